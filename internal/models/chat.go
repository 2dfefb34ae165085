package models

// Role values for a Turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message in a conversation.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. The credential
// travels in the Authorization header, never in the body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply to a chat submission. Conversation carries the
// full transcript after the exchange so the UI can re-render in one pass.
type ChatResponse struct {
	Reply        string `json:"reply"`
	Conversation []Turn `json:"conversation"`
}

// ConversationResponse is the reply to a transcript fetch.
type ConversationResponse struct {
	Conversation []Turn `json:"conversation"`
}
