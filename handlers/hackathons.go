package handlers

import (
	"net/http"
	"time"

	"ses/middleware"
	"ses/models"
	"ses/store"

	"github.com/go-chi/chi/v5"
)

type HackathonHandler struct {
	store *store.Store
}

func NewHackathonHandler(st *store.Store) *HackathonHandler {
	return &HackathonHandler{store: st}
}

func (h *HackathonHandler) List(w http.ResponseWriter, r *http.Request) {
	hacks, err := h.store.Hackathons()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list hackathons")
		return
	}
	respondJSON(w, http.StatusOK, hacks)
}

func (h *HackathonHandler) Get(w http.ResponseWriter, r *http.Request) {
	hack, err := h.store.HackathonByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load hackathon")
		return
	}
	if hack == nil {
		respondError(w, http.StatusNotFound, "hackathon not found")
		return
	}
	respondJSON(w, http.StatusOK, hack)
}

type createHackathonRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	ImageURL    string    `json:"image_url"`
	IconURL     string    `json:"icon_url"`
}

func (h *HackathonHandler) Create(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.RoleFromContext(r.Context())
	if !role.CanCreateHackathon() {
		respondError(w, http.StatusForbidden, "not allowed to create hackathons")
		return
	}

	var req createHackathonRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
		respondError(w, http.StatusBadRequest, "name, start_date and end_date are required")
		return
	}

	hack := models.Hackathon{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
		IconURL:     req.IconURL,
	}
	if err := h.store.CreateHackathon(&hack); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create hackathon")
		return
	}
	respondJSON(w, http.StatusCreated, hack)
}

type updateHackathonRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    *string    `json:"location"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	ImageURL    *string    `json:"image_url"`
	IconURL     *string    `json:"icon_url"`
}

func (h *HackathonHandler) Update(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.RoleFromContext(r.Context())
	if !role.CanManageHackathons() && !role.CanCreateHackathon() {
		respondError(w, http.StatusForbidden, "not allowed to edit hackathons")
		return
	}

	id := chi.URLParam(r, "id")
	hack, err := h.store.HackathonByID(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load hackathon")
		return
	}
	if hack == nil {
		respondError(w, http.StatusNotFound, "hackathon not found")
		return
	}

	var req updateHackathonRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	update := store.HackathonUpdate{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		IconURL:     req.IconURL,
	}
	if req.Latitude != nil {
		update.Latitude = &req.Latitude
	}
	if req.Longitude != nil {
		update.Longitude = &req.Longitude
	}

	// Plain admins may only rename a hackathon; other fields are ignored.
	if role.IsAdmin() {
		update = store.HackathonUpdate{Name: req.Name}
	}

	if err := h.store.UpdateHackathon(id, update); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update hackathon")
		return
	}

	updated, err := h.store.HackathonByID(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load hackathon")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *HackathonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.RoleFromContext(r.Context())
	if !role.CanDeleteHackathons() {
		respondError(w, http.StatusForbidden, "not allowed to delete hackathons")
		return
	}

	if err := h.store.DeleteHackathon(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete hackathon")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
