package handlers

import (
	"net/http"
	"strings"

	"ses/config"
	"ses/middleware"
	"ses/models"
	"ses/store"

	"golang.org/x/crypto/bcrypt"
)

// invalidCredentials is returned on any sign-in failure, whether the email
// exists or not, to avoid account enumeration.
const invalidCredentials = "invalid email or password"

type AuthHandler struct {
	config *config.Config
	store  *store.Store
}

func NewAuthHandler(cfg *config.Config, st *store.Store) *AuthHandler {
	return &AuthHandler{config: cfg, store: st}
}

type registerRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	FullName string          `json:"full_name"`
	RoleSlug models.RoleSlug `json:"role_slug"`
}

type sessionResponse struct {
	Token    string          `json:"token"`
	Profile  *models.Profile `json:"profile"`
	RoleSlug models.RoleSlug `json:"role_slug"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	role, err := h.store.RoleBySlug(req.RoleSlug)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to look up role")
		return
	}
	if role == nil {
		respondError(w, http.StatusBadRequest, "unknown role")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	profile := models.Profile{
		RoleID:       role.ID,
		Email:        &email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
	}
	if err := h.store.CreateProfile(&profile); err != nil {
		if store.IsDuplicate(err) {
			respondError(w, http.StatusConflict, "email is already registered")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create profile")
		return
	}

	h.respondWithSession(w, &profile, role.Slug, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.store.ProfileByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to look up profile")
		return
	}
	if profile == nil {
		respondError(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(strings.TrimSpace(req.Password))); err != nil {
		respondError(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	role, err := h.store.RoleSlugByID(profile.RoleID)
	if err != nil || role == "" {
		respondError(w, http.StatusInternalServerError, "failed to resolve role")
		return
	}

	h.respondWithSession(w, profile, role, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile := middleware.ProfileFromContext(r.Context())
	role, _ := middleware.RoleFromContext(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{
		"profile":   profile,
		"role_slug": role,
	})
}

func (h *AuthHandler) respondWithSession(w http.ResponseWriter, profile *models.Profile, role models.RoleSlug, status int) {
	token, err := middleware.GenerateToken(profile, role, h.config.JWTExpiration)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, status, sessionResponse{Token: token, Profile: profile, RoleSlug: role})
}
