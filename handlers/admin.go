package handlers

import (
	"net/http"

	"ses/models"
	"ses/store"

	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the super-admin user management screens: listing
// profiles with roles, role assignment, and account deletion. Route-level
// RequireRole guards access.
type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

func (h *AdminHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.Profiles()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	respondJSON(w, http.StatusOK, profiles)
}

func (h *AdminHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.store.Roles()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list roles")
		return
	}
	respondJSON(w, http.StatusOK, roles)
}

type assignRoleRequest struct {
	RoleSlug models.RoleSlug `json:"role_slug"`
}

func (h *AdminHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "id")
	profile, err := h.store.ProfileByID(profileID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if profile == nil {
		respondError(w, http.StatusNotFound, "profile not found")
		return
	}

	var req assignRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
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

	if err := h.store.UpdateProfileRole(profileID, role.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to assign role")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "role updated"})
}

func (h *AdminHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProfile(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
