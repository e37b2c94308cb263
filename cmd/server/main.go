package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appconfig "github.com/KatzVentures/FounderLeverageDashboard/config"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/cache"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/config"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/repository"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/service"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/transport/rest"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/transport/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()
	cfg := appconfig.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Email:     %s", aiConfig.Models.EmailCategorize)
	log.Printf("  Calendar:  %s", aiConfig.Models.CalendarCategorize)
	log.Printf("  Solutions: %s", aiConfig.Models.Solutions)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (using keyword fallback)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize storage
	assessmentRepo := repository.NewAssessmentRepo(db)
	sessions := cache.NewSessionCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	analyzer := service.NewAnalyzerService()
	crm := service.NewCRMService(cfg)
	email := service.NewEmailService(cfg)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, sessions, analyzer, crm, email)

	// Inject notifier (wsHub implements service.Notifier)
	assessmentSvc.SetNotifier(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		Sessions:          sessions,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/questions")
		log.Println("  GET  /v1/stages")
		log.Println("  POST /v1/assessments")
		log.Println("  POST /v1/assessments/{id}/calculate")
		log.Println("  GET  /v1/assessments/{id}/results")
		log.Println("  POST /v1/assessments/{id}/analyze")
		log.Println("  GET  /v1/sessions/{id}")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/admin/assessments")
		log.Println("  WS   /v1/ws/assessments/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
