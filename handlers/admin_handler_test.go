package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_finder/config"
	"restaurant_finder/db"
	"restaurant_finder/models"
	"restaurant_finder/services"
)

// setupHandlerDB rebinds the global database handle to a fresh file.
func setupHandlerDB(t *testing.T) {
	t.Helper()

	var cfg config.Config
	cfg.DB.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Data.Dir = t.TempDir()
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "secret"

	require.NoError(t, db.InitSQLite(&cfg))
	t.Cleanup(func() { db.DB.Close() })
}

func TestLoginHandler(t *testing.T) {
	setupHandlerDB(t)
	auth := services.NewAuthService()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"secret"}`))
	rec := httptest.NewRecorder()
	LoginHandler(rec, req, auth)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, models.CodeSuccess, envelope.Code)

	payload, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	token, _ := payload["token"].(string)
	assert.NotEmpty(t, token)
	assert.True(t, auth.Validate(token))
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	setupHandlerDB(t)
	auth := services.NewAuthService()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"nope"}`))
	rec := httptest.NewRecorder()
	LoginHandler(rec, req, auth)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var envelope models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, models.CodeInvalidCredentials, envelope.Code)
}

func TestLoginHandlerMissingFields(t *testing.T) {
	setupHandlerDB(t)
	auth := services.NewAuthService()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin"}`))
	rec := httptest.NewRecorder()
	LoginHandler(rec, req, auth)

	var envelope models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, models.CodeMissingParams, envelope.Code)
}

func TestRequireAdmin(t *testing.T) {
	setupHandlerDB(t)
	auth := services.NewAuthService()

	called := false
	protected := RequireAdmin(auth, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	// no token
	rec := httptest.NewRecorder()
	protected(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	// garbage token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-session")
	protected(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	// live session
	token, _, err := auth.Login("admin", "secret")
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	setupHandlerDB(t)
	auth := services.NewAuthService()

	token, _, err := auth.Login("admin", "secret")
	require.NoError(t, err)
	require.True(t, auth.Validate(token))

	auth.Logout(token)
	assert.False(t, auth.Validate(token))
}
