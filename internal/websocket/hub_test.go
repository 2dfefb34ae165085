package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"deepchat-backend/internal/middleware"
	"deepchat-backend/internal/models"
)

// dialHub connects a test client to the hub under a fixed session ID.
func dialHub(t *testing.T, hub *Hub, sessionID uuid.UUID) (*websocket.Conn, func()) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.SessionIDKey, sessionID)
		hub.HandleWebSocket(w, r.WithContext(ctx))
	}))

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		server.Close()
		t.Fatalf("Failed to dial hub: %v", err)
	}

	// Registration happens server-side just after the handshake; wait for
	// it so Notify cannot race the registry.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		registered := len(hub.connections[sessionID]) > 0
		hub.mu.RUnlock()
		if registered {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func TestHub_NotifyReachesSession(t *testing.T) {
	hub := NewHub()
	sessionID := uuid.New()

	conn, cleanup := dialHub(t, hub, sessionID)
	defer cleanup()

	hub.Notify(sessionID, models.WSMessage{
		Type: "turns_appended",
		Payload: models.TurnsAppended{Turns: []models.Turn{
			{Role: models.RoleUser, Content: "2+2?"},
			{Role: models.RoleAssistant, Content: "4"},
		}},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read pushed message: %v", err)
	}

	var msg struct {
		Type    string `json:"type"`
		Payload struct {
			Turns []models.Turn `json:"turns"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Failed to decode pushed message: %v", err)
	}

	if msg.Type != "turns_appended" {
		t.Errorf("Expected type 'turns_appended', got %q", msg.Type)
	}
	if len(msg.Payload.Turns) != 2 || msg.Payload.Turns[0].Content != "2+2?" {
		t.Errorf("Unexpected payload: %+v", msg.Payload.Turns)
	}
}

func TestHub_NotifyDoesNotCrossSessions(t *testing.T) {
	hub := NewHub()
	mine := uuid.New()
	other := uuid.New()

	conn, cleanup := dialHub(t, hub, mine)
	defer cleanup()

	hub.Notify(other, models.WSMessage{Type: "turns_appended"})

	conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("Expected no message for another session's notification")
	}
}

func TestHub_NotifyWithoutConnections(t *testing.T) {
	hub := NewHub()
	// Must not panic or block with nothing registered.
	hub.Notify(uuid.New(), models.WSMessage{Type: "turns_appended"})
}
