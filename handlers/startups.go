package handlers

import (
	"net/http"

	"ses/middleware"
	"ses/models"
	"ses/store"

	"github.com/go-chi/chi/v5"
)

type StartupHandler struct {
	store *store.Store
}

func NewStartupHandler(st *store.Store) *StartupHandler {
	return &StartupHandler{store: st}
}

func (h *StartupHandler) List(w http.ResponseWriter, r *http.Request) {
	startups, err := h.store.Startups()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list startups")
		return
	}
	respondJSON(w, http.StatusOK, startups)
}

func (h *StartupHandler) Get(w http.ResponseWriter, r *http.Request) {
	startup, err := h.store.StartupByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load startup")
		return
	}
	if startup == nil {
		respondError(w, http.StatusNotFound, "startup not found")
		return
	}
	respondJSON(w, http.StatusOK, startup)
}

type createStartupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`
	Stage       string `json:"stage"`
}

// Create registers the caller's startup. A profile owns at most one.
func (h *StartupHandler) Create(w http.ResponseWriter, r *http.Request) {
	profile := middleware.ProfileFromContext(r.Context())
	role, _ := middleware.RoleFromContext(r.Context())
	if !role.CanCreateStartup() {
		respondError(w, http.StatusForbidden, "not allowed to create startups")
		return
	}

	var req createStartupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	startup := models.Startup{
		OwnerID:     profile.ID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Stage:       req.Stage,
	}
	if err := h.store.CreateStartup(&startup); err != nil {
		if store.IsDuplicate(err) {
			respondError(w, http.StatusConflict, "profile already owns a startup")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create startup")
		return
	}
	respondJSON(w, http.StatusCreated, startup)
}

type updateStartupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	LogoURL     *string `json:"logo_url"`
	Stage       *string `json:"stage"`
}

func (h *StartupHandler) Update(w http.ResponseWriter, r *http.Request) {
	startup := h.authorizeOwnerOrAdmin(w, r)
	if startup == nil {
		return
	}

	var req updateStartupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.store.UpdateStartup(startup.ID, store.StartupUpdate{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Stage:       req.Stage,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update startup")
		return
	}

	updated, err := h.store.StartupByID(startup.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load startup")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *StartupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	startup := h.authorizeOwnerOrAdmin(w, r)
	if startup == nil {
		return
	}

	if err := h.store.DeleteStartup(startup.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete startup")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *StartupHandler) authorizeOwnerOrAdmin(w http.ResponseWriter, r *http.Request) *models.Startup {
	startup, err := h.store.StartupByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load startup")
		return nil
	}
	if startup == nil {
		respondError(w, http.StatusNotFound, "startup not found")
		return nil
	}

	profile := middleware.ProfileFromContext(r.Context())
	role, _ := middleware.RoleFromContext(r.Context())
	if startup.OwnerID != profile.ID && !role.IsAdminOrSuperAdmin() {
		respondError(w, http.StatusForbidden, "not the startup owner")
		return nil
	}
	return startup
}
