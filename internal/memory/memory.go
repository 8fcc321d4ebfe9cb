// Package memory keeps a bounded window of conversation turns.
package memory

import (
	"strings"
	"sync"
	"time"

	"multi-agent-assistant/pkg/textparse"
)

const (
	DefaultMaxTurns = 10

	// assistantPreviewRunes bounds how much of each reply goes into the
	// rendered context.
	assistantPreviewRunes = 200
)

// Turn is one completed exchange.
type Turn struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Label     string    `json:"agent"`
}

// Memory is a FIFO window of the most recent turns. Safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	maxTurns int
	turns    []Turn
	now      func() time.Time
}

// New creates a memory holding at most maxTurns turns.
func New(maxTurns int) *Memory {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Memory{maxTurns: maxTurns, now: time.Now}
}

// AddTurn appends a turn and drops the oldest ones beyond the window.
func (m *Memory) AddTurn(user, assistant, label string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, Turn{
		Timestamp: m.now(),
		User:      user,
		Assistant: assistant,
		Label:     label,
	})
	if over := len(m.turns) - m.maxTurns; over > 0 {
		m.turns = append([]Turn(nil), m.turns[over:]...)
	}
}

// Context renders the last k turns as alternating "User:"/"Assistant:" lines.
func (m *Memory) Context(k int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.turns) == 0 || k <= 0 {
		return ""
	}
	start := len(m.turns) - k
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, 2*(len(m.turns)-start))
	for _, t := range m.turns[start:] {
		lines = append(lines,
			"User: "+t.User,
			"Assistant: "+textparse.Truncate(t.Assistant, assistantPreviewRunes, "")+"...",
		)
	}
	return strings.Join(lines, "\n")
}

// Clear drops all turns.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = nil
}

// History returns a copy of the stored turns, oldest first.
func (m *Memory) History() []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Len returns the number of stored turns.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}
