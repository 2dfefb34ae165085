package models

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// WSMessage is the envelope for messages pushed over the websocket.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// TurnsAppended is the websocket payload sent after a chat exchange, so
// other tabs of the same session can extend their transcript.
type TurnsAppended struct {
	Turns []Turn `json:"turns"`
}
