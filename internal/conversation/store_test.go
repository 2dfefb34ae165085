package conversation

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"deepchat-backend/internal/models"
)

func TestConversation_AppendOnly(t *testing.T) {
	conv := &Conversation{}

	const pairs = 5
	for i := 0; i < pairs; i++ {
		user := models.Turn{Role: models.RoleUser, Content: fmt.Sprintf("question %d", i)}
		assistant := models.Turn{Role: models.RoleAssistant, Content: fmt.Sprintf("answer %d", i)}
		conv.Append(user, assistant)

		// Earlier entries must be untouched by later appends.
		all := conv.All()
		if all[0].Content != "question 0" {
			t.Fatalf("First turn mutated after append: %+v", all[0])
		}
	}

	all := conv.All()
	if len(all) != 2*pairs {
		t.Fatalf("Expected %d turns, got %d", 2*pairs, len(all))
	}

	for i, turn := range all {
		wantRole := models.RoleUser
		if i%2 == 1 {
			wantRole = models.RoleAssistant
		}
		if turn.Role != wantRole {
			t.Errorf("Turn %d: expected role %q, got %q", i, wantRole, turn.Role)
		}
	}
}

func TestConversation_AllReturnsCopy(t *testing.T) {
	conv := &Conversation{}
	conv.Append(models.Turn{Role: models.RoleUser, Content: "original"})

	all := conv.All()
	all[0].Content = "tampered"

	if conv.All()[0].Content != "original" {
		t.Error("Mutating the returned slice affected the store")
	}
}

func TestConversation_EmptyAll(t *testing.T) {
	conv := &Conversation{}
	if got := conv.All(); len(got) != 0 {
		t.Errorf("Expected empty log, got %d turns", len(got))
	}
}

func TestManager_SessionIsolation(t *testing.T) {
	m := NewManager(time.Hour)

	a := uuid.New()
	b := uuid.New()

	m.Get(a).Append(models.Turn{Role: models.RoleUser, Content: "from a"})
	m.Get(b).Append(models.Turn{Role: models.RoleUser, Content: "from b"})

	if got := m.Get(a).All(); len(got) != 1 || got[0].Content != "from a" {
		t.Errorf("Session a sees wrong transcript: %+v", got)
	}
	if got := m.Get(b).All(); len(got) != 1 || got[0].Content != "from b" {
		t.Errorf("Session b sees wrong transcript: %+v", got)
	}
}

func TestManager_GetReturnsSameConversation(t *testing.T) {
	m := NewManager(time.Hour)
	id := uuid.New()

	if m.Get(id) != m.Get(id) {
		t.Error("Expected the same conversation instance across accesses")
	}
	if m.Count() != 1 {
		t.Errorf("Expected one live session, got %d", m.Count())
	}
}

func TestManager_Reset(t *testing.T) {
	m := NewManager(time.Hour)

	a := uuid.New()
	b := uuid.New()
	m.Get(a).Append(models.Turn{Role: models.RoleUser, Content: "a"})
	m.Get(b).Append(models.Turn{Role: models.RoleUser, Content: "b"})

	m.Reset(a)

	if got := m.Get(a).Len(); got != 0 {
		t.Errorf("Expected empty conversation after reset, got %d turns", got)
	}
	if got := m.Get(b).Len(); got != 1 {
		t.Errorf("Reset leaked into another session: %d turns", got)
	}
}
