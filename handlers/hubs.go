package handlers

import (
	"net/http"

	"ses/store"

	"github.com/go-chi/chi/v5"
)

// HubHandler serves the map's static IT hub markers.
type HubHandler struct {
	store *store.Store
}

func NewHubHandler(st *store.Store) *HubHandler {
	return &HubHandler{store: st}
}

func (h *HubHandler) List(w http.ResponseWriter, r *http.Request) {
	hubs, err := h.store.ItHubs()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list hubs")
		return
	}
	respondJSON(w, http.StatusOK, hubs)
}

func (h *HubHandler) Get(w http.ResponseWriter, r *http.Request) {
	hub, err := h.store.ItHubByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load hub")
		return
	}
	if hub == nil {
		respondError(w, http.StatusNotFound, "hub not found")
		return
	}
	respondJSON(w, http.StatusOK, hub)
}
