package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/service"
)

type contextKey string

const AdminIDKey contextKey = "adminId"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAdmin validates the admin JWT from the Authorization header
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID returns the authenticated admin id, or "" when absent
func GetAdminID(ctx context.Context) string {
	if v, ok := ctx.Value(AdminIDKey).(string); ok {
		return v
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
