package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/agent/orchestrator"
	"multi-agent-assistant/internal/memory"
)

type fakeConversation struct {
	processed []string
	cleared   int
	mem       *memory.Memory
}

func newFakeConversation() *fakeConversation {
	return &fakeConversation{mem: memory.New(10)}
}

func (f *fakeConversation) Process(ctx context.Context, in orchestrator.ProcessInput) orchestrator.Response {
	f.processed = append(f.processed, in.Message)
	display := "answer to " + in.Message
	f.mem.AddTurn(in.Message, display, string(agent.LabelGeneral))
	return orchestrator.Response{Input: in.Message, Label: agent.LabelGeneral, Display: display}
}

func (f *fakeConversation) ClearMemory() {
	f.cleared++
	f.mem.Clear()
}

func (f *fakeConversation) History() []memory.Turn { return f.mem.History() }

func (f *fakeConversation) Capabilities() string { return orchestrator.CapabilitiesText }

func run(t *testing.T, conv Conversation, input string) string {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	err := NewREPL(conv, strings.NewReader(input), &out).Run(context.Background())
	assert.NoError(t, err)
	return out.String()
}

func TestREPL_Commands(t *testing.T) {
	conv := newFakeConversation()
	out := run(t, conv, "help\ncaps\nhistory\nhello there\n\nhistory\nclear\nhistory\nexit\nnever read\n")

	assert.Contains(t, out, "INTEGRATED AI ASSISTANT")
	assert.Contains(t, out, "COMMANDS:")
	assert.Contains(t, out, "Available Capabilities:")
	assert.Contains(t, out, "Agent: GENERAL")
	assert.Contains(t, out, "answer to hello there")
	assert.Contains(t, out, "Turn 1 (general):\n  User: hello there...\n  Assistant: answer to hello there...")
	assert.Equal(t, 2, strings.Count(out, "No conversation history yet."))
	assert.Contains(t, out, "Conversation memory cleared. Starting fresh!")
	assert.Contains(t, out, "Goodbye!")

	assert.Equal(t, []string{"hello there"}, conv.processed)
	assert.Equal(t, 1, conv.cleared)
}

func TestREPL_EOF(t *testing.T) {
	conv := newFakeConversation()
	out := run(t, conv, "hi")

	assert.Equal(t, []string{"hi"}, conv.processed)
	assert.NotContains(t, out, "Goodbye!")
}

func TestREPL_Demo(t *testing.T) {
	conv := newFakeConversation()
	input := "demo\n" + strings.Repeat("\n", len(demoQueries)) + "exit\n"
	out := run(t, conv, input)

	assert.Len(t, conv.processed, len(demoQueries))
	assert.Equal(t, demoQueries[2].Query, conv.processed[2])
	assert.Contains(t, out, "DEMONSTRATION MODE")
	assert.Contains(t, out, "Demonstration complete!")
	assert.Contains(t, out, "Goodbye!")
}

func TestPrintResponse(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	r := NewREPL(newFakeConversation(), strings.NewReader(""), &out)

	r.PrintResponse(orchestrator.Response{Label: agent.LabelWeather, Display: "Error: Invalid location: Atlantis", Error: "Invalid location: Atlantis"})
	r.PrintResponse(orchestrator.Response{Label: agent.LabelSQL})

	got := out.String()
	assert.Contains(t, got, "Agent: WEATHER")
	assert.Contains(t, got, "Error: Invalid location: Atlantis")
	assert.Contains(t, got, "No response generated.")
}
