package handlers

import (
	"net/http"

	"ses/middleware"
	"ses/models"
	"ses/store"

	"github.com/go-chi/chi/v5"
)

type TeamHandler struct {
	store *store.Store
}

func NewTeamHandler(st *store.Store) *TeamHandler {
	return &TeamHandler{store: st}
}

func (h *TeamHandler) ListByHackathon(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.TeamsByHackathon(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list teams")
		return
	}
	respondJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	team, err := h.store.TeamByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load team")
		return
	}
	if team == nil {
		respondError(w, http.StatusNotFound, "team not found")
		return
	}
	respondJSON(w, http.StatusOK, team)
}

type createTeamRequest struct {
	HackathonID string `json:"hackathon_id"`
	Name        string `json:"name"`
	TeamRole    string `json:"team_role"`
	Description string `json:"description"`
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.HackathonID == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "hackathon_id and name are required")
		return
	}

	hack, err := h.store.HackathonByID(req.HackathonID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load hackathon")
		return
	}
	if hack == nil {
		respondError(w, http.StatusNotFound, "hackathon not found")
		return
	}

	team := models.Team{
		HackathonID: req.HackathonID,
		Name:        req.Name,
		TeamRole:    req.TeamRole,
		Description: req.Description,
	}
	if err := h.store.CreateTeam(&team); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create team")
		return
	}
	respondJSON(w, http.StatusCreated, team)
}

func (h *TeamHandler) Members(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.TeamMembers(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list members")
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// Join submits the caller's request to join a team. Existing members cannot
// re-apply.
func (h *TeamHandler) Join(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")
	profile := middleware.ProfileFromContext(r.Context())

	team, err := h.store.TeamByID(teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load team")
		return
	}
	if team == nil {
		respondError(w, http.StatusNotFound, "team not found")
		return
	}

	isMember, err := h.store.IsTeamMember(teamID, profile.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to check membership")
		return
	}
	if isMember {
		respondError(w, http.StatusConflict, "already a team member")
		return
	}

	if err := h.store.SubmitJoinRequest(teamID, profile.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to submit join request")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(models.JoinStatusPending)})
}

func (h *TeamHandler) JoinStatus(w http.ResponseWriter, r *http.Request) {
	profile := middleware.ProfileFromContext(r.Context())
	status, err := h.store.JoinRequestStatus(chi.URLParam(r, "id"), profile.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load join status")
		return
	}

	isMember, err := h.store.IsTeamMember(chi.URLParam(r, "id"), profile.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to check membership")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    status,
		"is_member": isMember,
	})
}

// PendingRequests lists a team's open join requests. Only the team lead or
// a team manager may see them.
func (h *TeamHandler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")
	if !h.callerLeadsTeam(w, r, teamID) {
		return
	}

	requests, err := h.store.PendingJoinRequests(teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list join requests")
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *TeamHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	req := h.authorizeRequestDecision(w, r)
	if req == nil {
		return
	}

	if err := h.store.AcceptJoinRequest(req.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to accept join request")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

func (h *TeamHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	req := h.authorizeRequestDecision(w, r)
	if req == nil {
		return
	}

	if err := h.store.RejectJoinRequest(req.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to reject join request")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

// authorizeRequestDecision loads the request and verifies the caller may
// decide it. Writes the error response itself and returns nil when the
// caller may not proceed.
func (h *TeamHandler) authorizeRequestDecision(w http.ResponseWriter, r *http.Request) *models.TeamJoinRequest {
	req, err := h.store.JoinRequestByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load join request")
		return nil
	}
	if req == nil {
		respondError(w, http.StatusNotFound, "join request not found")
		return nil
	}
	if !h.callerLeadsTeam(w, r, req.TeamID) {
		return nil
	}
	return req
}

func (h *TeamHandler) callerLeadsTeam(w http.ResponseWriter, r *http.Request, teamID string) bool {
	profile := middleware.ProfileFromContext(r.Context())
	role, _ := middleware.RoleFromContext(r.Context())

	if role.CanManageTeams() {
		return true
	}

	leadID, err := h.store.TeamLeadUserID(teamID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load team lead")
		return false
	}
	if leadID == "" || leadID != profile.ID {
		respondError(w, http.StatusForbidden, "only the team lead can manage join requests")
		return false
	}
	return true
}
