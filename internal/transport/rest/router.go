package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/cache"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/service"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/transport/rest/handler"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/transport/rest/middleware"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	Sessions          cache.SessionCache
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	catalogHandler := handler.NewCatalogHandler()
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.Sessions)
	adminHandler := handler.NewAdminHandler(c.AssessmentService)
	wsHandler := ws.NewHandler(c.WSHub, c.AssessmentService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions", catalogHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/stages", catalogHandler.Stages).Methods("GET", "OPTIONS")

	v1.HandleFunc("/assessments", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/calculate", assessmentHandler.Calculate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/results", assessmentHandler.Results).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/analyze", assessmentHandler.Analyze).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", assessmentHandler.Session).Methods("GET", "OPTIONS")

	// WebSocket progress stream
	v1.HandleFunc("/ws/assessments/{id}", wsHandler.AssessmentWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/admin/assessments", adminHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/assessments/{id}", adminHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/assessments/{id}", adminHandler.Delete).Methods("DELETE")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
