package handlers

import (
	"errors"
	"net/http"

	"ses/gemini"
)

const assistantPrompt = "You are the assistant of a startup-ecosystem community app. " +
	"Answer questions about hackathons, startups, teams and IT hubs briefly and helpfully."

type ChatHandler struct {
	client *gemini.Client
}

func NewChatHandler(client *gemini.Client) *ChatHandler {
	return &ChatHandler{client: client}
}

type chatRequest struct {
	Messages []gemini.Message `json:"messages"`
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		respondError(w, http.StatusBadRequest, "messages are required")
		return
	}

	reply, err := h.client.Chat(r.Context(), req.Messages, assistantPrompt)
	if err != nil {
		if errors.Is(err, gemini.ErrNoAPIKey) {
			respondError(w, http.StatusServiceUnavailable, "chat assistant is not configured")
			return
		}
		respondError(w, http.StatusBadGateway, "chat assistant is unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"content": reply})
}
