package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ses/config"
	"ses/database"
	"ses/middleware"
	"ses/store"

	"github.com/stretchr/testify/require"
)

func newAuthTestHandler(t *testing.T) *AuthHandler {
	t.Helper()
	cfg := config.Load()
	middleware.SetJWTSecret(cfg.JWTSecret)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db, false))

	return NewAuthHandler(cfg, store.New(db))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	h := newAuthTestHandler(t)

	rec := postJSON(t, h.Register, "/register", map[string]string{
		"email":     "new@demo.az",
		"password":  "secret123",
		"full_name": "New User",
		"role_slug": "startup",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var session sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	require.Equal(t, "startup", string(session.RoleSlug))

	rec = postJSON(t, h.Login, "/login", map[string]string{
		"email":    "new@demo.az",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	h := newAuthTestHandler(t)

	body := map[string]string{
		"email": "dup@demo.az", "password": "secret123", "role_slug": "startup",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, h.Register, "/register", body).Code)
	require.Equal(t, http.StatusConflict, postJSON(t, h.Register, "/register", body).Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	h := newAuthTestHandler(t)

	rec := postJSON(t, h.Register, "/register", map[string]string{
		"email": "x@demo.az", "password": "secret123", "role_slug": "president",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestLoginFailuresDoNotLeakAccountExistence(t *testing.T) {
	h := newAuthTestHandler(t)

	require.Equal(t, http.StatusCreated, postJSON(t, h.Register, "/register", map[string]string{
		"email": "known@demo.az", "password": "secret123", "role_slug": "startup",
	}).Code)

	wrongPassword := postJSON(t, h.Login, "/login", map[string]string{
		"email": "known@demo.az", "password": "wrong",
	})
	unknownEmail := postJSON(t, h.Login, "/login", map[string]string{
		"email": "ghost@demo.az", "password": "whatever",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

// Seeded participants have no password; signing in as one must fail the
// same way as any bad credential.
func TestLoginRejectsPasswordlessProfile(t *testing.T) {
	h := newAuthTestHandler(t)

	rec := postJSON(t, h.Login, "/login", map[string]string{
		"email": "user1@demo.az", "password": "",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
