package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"deepchat-backend/internal/completion"
	"deepchat-backend/internal/conversation"
	"deepchat-backend/internal/middleware"
	"deepchat-backend/internal/models"
	"deepchat-backend/internal/websocket"
)

// completionClient is the slice of the completion package the handler
// needs; tests substitute their own.
type completionClient interface {
	Complete(ctx context.Context, credential, userText string) completion.Result
}

type ChatHandler struct {
	conversations *conversation.Manager
	client        completionClient
	hub           *websocket.Hub
}

func NewChatHandler(conversations *conversation.Manager, client completionClient, hub *websocket.Hub) *ChatHandler {
	return &ChatHandler{
		conversations: conversations,
		client:        client,
		hub:           hub,
	}
}

// Send runs one chat exchange: append the user turn, call the upstream
// model synchronously, append the outcome as the assistant turn. Failures
// from the upstream call are part of the transcript, not HTTP errors, so
// the response is 200 whenever the request itself was well-formed.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	conv := h.conversations.Get(sessionID)

	credential := bearerToken(r)
	result := h.client.Complete(r.Context(), credential, req.Message)

	// Blank input is rejected without being stored, whichever guard
	// fired first; everything else, guard messages and upstream errors
	// included, lands in the transcript as an assistant turn.
	if result.Kind == completion.KindEmptyInput || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusOK, models.ChatResponse{
			Reply:        result.Display(),
			Conversation: conv.All(),
		})
		return
	}

	userTurn := models.Turn{Role: models.RoleUser, Content: req.Message}
	assistantTurn := models.Turn{Role: models.RoleAssistant, Content: result.Display()}
	conv.Append(userTurn, assistantTurn)

	h.hub.Notify(sessionID, models.WSMessage{
		Type:    "turns_appended",
		Payload: models.TurnsAppended{Turns: []models.Turn{userTurn, assistantTurn}},
	})

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Reply:        assistantTurn.Content,
		Conversation: conv.All(),
	})
}

// History returns the session's full ordered transcript.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	conv := h.conversations.Get(sessionID)

	writeJSON(w, http.StatusOK, models.ConversationResponse{Conversation: conv.All()})
}

// Reset discards the session's transcript.
func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	h.conversations.Reset(sessionID)

	h.hub.Notify(sessionID, models.WSMessage{Type: "conversation_reset"})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Conversation cleared"})
}

// bearerToken extracts the pass-through credential from the Authorization
// header. It is forwarded upstream as-is and never validated here.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
