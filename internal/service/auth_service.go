package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles admin dashboard authentication
type AuthService struct {
	adminUsername string
	adminPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		adminUsername: username,
		adminPassword: password,
		jwtSecret:     []byte(secret),
	}
}

// Login validates credentials and returns a token valid for a day
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return nil, ErrInvalidCredentials
	}

	adminID := "admin_" + uuid.New().String()[:8]

	claims := &model.AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		AdminID: adminID,
	}, nil
}

// ValidateToken validates an admin JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
