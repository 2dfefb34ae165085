package conversation

import (
	"sync"

	"deepchat-backend/internal/models"
)

// Conversation is an append-only log of turns for one browser session.
// Turns are never edited or removed once appended.
type Conversation struct {
	mu    sync.Mutex
	turns []models.Turn
}

// Append adds turns to the end of the log in the given order.
func (c *Conversation) Append(turns ...models.Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.turns = append(c.turns, turns...)
}

// All returns an ordered copy of the log. Mutating the returned slice does
// not affect the store.
func (c *Conversation) All() []models.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len reports the number of turns appended so far.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.turns)
}
