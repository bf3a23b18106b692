package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-login-flow/internal/config"
	"github.com/MKhiriev/go-login-flow/internal/logger"
	"github.com/MKhiriev/go-login-flow/internal/utils"
	"github.com/MKhiriev/go-login-flow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, models.User) {
	t.Helper()

	cfg := &config.ServerConfig{
		HTTPAddress:   "localhost:0",
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "login-flow-test",
		TokenDuration: time.Hour,
	}

	h := NewHandler(cfg, logger.Nop())
	user, err := h.SeedUser("validUser", "Valid User", "longenoughpw1")
	require.NoError(t, err)

	return h, user
}

func doLogin(t *testing.T, h *Handler, req models.LoginRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, r)

	return w
}

func TestLogin_Success(t *testing.T) {
	h, want := newTestHandler(t)

	w := doLogin(t, h, models.LoginRequest{Username: "validUser", Password: "longenoughpw1"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, want, resp.User)

	tokenString, err := utils.ParseBearerToken(w.Header().Get("Authorization"))
	require.NoError(t, err)

	token, err := utils.ValidateAndParseJWTToken(tokenString, "test-sign-key", "login-flow-test")
	require.NoError(t, err)

	userID, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, want.UserID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doLogin(t, h, models.LoginRequest{Username: "validUser", Password: "wrong-password1"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Authorization"))
}

func TestLogin_UnknownUser(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doLogin(t, h, models.LoginRequest{Username: "nobody1", Password: "longenoughpw1"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_EmptyFields(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doLogin(t, h, models.LoginRequest{Username: "", Password: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSession_WithValidToken(t *testing.T) {
	h, want := newTestHandler(t)

	login := doLogin(t, h, models.LoginRequest{Username: "validUser", Password: "longenoughpw1"})
	require.Equal(t, http.StatusOK, login.Code)

	r := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	r.Header.Set("Authorization", login.Header().Get("Authorization"))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&user))
	assert.Equal(t, want, user)
}

func TestSession_WithoutToken(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_WithForgedToken(t *testing.T) {
	h, user := newTestHandler(t)

	forged, err := utils.GenerateJWTToken("login-flow-test", user.UserID, time.Hour, "different-key")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	r.Header.Set("Authorization", "Bearer "+forged.SignedString)
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
