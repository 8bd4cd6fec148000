package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
	"github.com/OlamideOlanipekun/NaijaBites/internal/services"
)

type assistantService interface {
	Submit(ctx context.Context, session *services.ChatSession, text string) []models.ChatMessage
}

type ChatHandler struct {
	assistant assistantService
	sessions  *services.ChatSessionStore
}

func NewChatHandler(assistant assistantService, sessions *services.ChatSessionStore) *ChatHandler {
	return &ChatHandler{assistant: assistant, sessions: sessions}
}

// Post submits one user message to the assistant and returns the transcript
// after the turn completes. Empty messages and submissions made while a
// request is in flight are dropped without growing the transcript; assistant
// failures come back as canned fallback text, never as an error status.
func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	session := h.sessions.GetOrCreate(sessionID(w, r))
	messages := h.assistant.Submit(r.Context(), session, req.Message)

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Messages: messages,
		Busy:     session.Busy(),
	})
}

// Get returns the current transcript, seeding the greeting on first touch.
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetOrCreate(sessionID(w, r))
	writeJSON(w, http.StatusOK, models.ChatResponse{
		Messages: session.Snapshot(),
		Busy:     session.Busy(),
	})
}
