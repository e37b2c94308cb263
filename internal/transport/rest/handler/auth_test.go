package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/service"
)

func TestLoginSuccess(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	h := NewAuthHandler(service.NewAuthService())

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"admin","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, strings.HasPrefix(resp.AdminID, "admin_"))
}

func TestLoginBadCredentials(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	h := NewAuthHandler(service.NewAuthService())

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginEmptyCredentials(t *testing.T) {
	h := NewAuthHandler(service.NewAuthService())

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"","password":""}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	h := NewAuthHandler(service.NewAuthService())

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
