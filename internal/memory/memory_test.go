package memory

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTurn_KeepsLastN(t *testing.T) {
	m := New(3)
	for i := 1; i <= 7; i++ {
		m.AddTurn(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i), "sql")
	}

	h := m.History()
	require.Len(t, h, 3)
	assert.Equal(t, "q5", h[0].User)
	assert.Equal(t, "q6", h[1].User)
	assert.Equal(t, "q7", h[2].User)
	assert.Equal(t, 3, m.Len())
}

func TestNew_DefaultWindow(t *testing.T) {
	m := New(0)
	for i := 0; i < 15; i++ {
		m.AddTurn("q", "a", "general")
	}
	assert.Equal(t, DefaultMaxTurns, m.Len())
}

func TestContext(t *testing.T) {
	m := New(10)
	assert.Equal(t, "", m.Context(3))

	m.AddTurn("hi", "hello there", "general")
	m.AddTurn("avg salary?", strings.Repeat("x", 250), "sql")
	m.AddTurn("PTO?", "15 days", "document-qa")
	m.AddTurn("weather?", "sunny", "weather")

	got := m.Context(3)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "User: avg salary?", lines[0])
	assert.Equal(t, "Assistant: "+strings.Repeat("x", 200)+"...", lines[1])
	assert.Equal(t, "User: PTO?", lines[2])
	assert.Equal(t, "Assistant: 15 days...", lines[3])
	assert.Equal(t, "User: weather?", lines[4])

	assert.Len(t, strings.Split(m.Context(50), "\n"), 8)
	assert.Equal(t, "", m.Context(0))
}

func TestContext_TruncatesRunes(t *testing.T) {
	m := New(1)
	m.AddTurn("q", strings.Repeat("é", 201), "general")

	want := "User: q\nAssistant: " + strings.Repeat("é", 200) + "..."
	assert.Equal(t, want, m.Context(1))
}

func TestClearAndHistoryCopy(t *testing.T) {
	m := New(5)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	m.AddTurn("q", "a", "sql")
	h := m.History()
	h[0].User = "mutated"
	assert.Equal(t, "q", m.History()[0].User)
	assert.Equal(t, fixed, m.History()[0].Timestamp)
	assert.Equal(t, "sql", m.History()[0].Label)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.History())
}

func TestConcurrentAdd(t *testing.T) {
	m := New(10)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.AddTurn("q", "a", "general")
			_ = m.Context(3)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, m.Len())
}
