// Package cli is the interactive terminal front end.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"multi-agent-assistant/internal/agent/orchestrator"
	"multi-agent-assistant/internal/memory"
	"multi-agent-assistant/pkg/textparse"
)

// Conversation is what the REPL drives. *orchestrator.Orchestrator
// satisfies it.
type Conversation interface {
	Process(ctx context.Context, in orchestrator.ProcessInput) orchestrator.Response
	ClearMemory()
	History() []memory.Turn
	Capabilities() string
}

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	agentColor = color.New(color.FgGreen, color.Bold)
	errorColor = color.New(color.FgRed)
	dimColor   = color.New(color.Faint)
)

type REPL struct {
	conv Conversation
	in   *bufio.Scanner
	out  io.Writer
}

func NewREPL(conv Conversation, in io.Reader, out io.Writer) *REPL {
	return &REPL{conv: conv, in: bufio.NewScanner(in), out: out}
}

// Run reads lines until "exit", EOF or ctx cancellation.
func (r *REPL) Run(ctx context.Context) error {
	titleColor.Fprint(r.out, banner)
	fmt.Fprintln(r.out, "Type 'help' for commands, or start asking questions.")
	fmt.Fprintln(r.out, "Type 'demo' to see a demonstration of all capabilities.")
	fmt.Fprintln(r.out)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(r.out, "You: ")
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}

		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit":
			fmt.Fprintln(r.out, "\nThank you for using the AI Assistant. Goodbye!")
			return nil
		case "help":
			fmt.Fprint(r.out, helpText)
		case "caps":
			fmt.Fprintln(r.out, r.conv.Capabilities())
		case "clear":
			r.conv.ClearMemory()
			fmt.Fprintln(r.out, "Conversation memory cleared. Starting fresh!")
			fmt.Fprintln(r.out)
		case "history":
			r.printHistory()
		case "demo":
			r.runDemo(ctx)
		default:
			r.PrintResponse(r.conv.Process(ctx, orchestrator.ProcessInput{Message: line}))
		}
	}
}

// PrintResponse writes one framed answer.
func (r *REPL) PrintResponse(resp orchestrator.Response) {
	rule := strings.Repeat("─", ruleWidth)

	fmt.Fprintln(r.out, "\n"+rule)
	agentColor.Fprintf(r.out, "Agent: %s\n", strings.ToUpper(string(resp.Label)))
	fmt.Fprintln(r.out, rule)

	switch {
	case resp.Error != "" && resp.Display == "Error: "+resp.Error:
		errorColor.Fprintln(r.out, resp.Display)
	case resp.Display != "":
		fmt.Fprintln(r.out, resp.Display)
	default:
		fmt.Fprintln(r.out, "No response generated.")
	}

	fmt.Fprintln(r.out, rule)
}

func (r *REPL) printHistory() {
	history := r.conv.History()
	if len(history) == 0 {
		fmt.Fprintln(r.out, "No conversation history yet.")
		fmt.Fprintln(r.out)
		return
	}

	fmt.Fprintln(r.out, "\nConversation History:")
	fmt.Fprintln(r.out, strings.Repeat("-", 40))
	for i, t := range history {
		fmt.Fprintf(r.out, "\nTurn %d (%s):\n", i+1, t.Label)
		fmt.Fprintf(r.out, "  User: %s...\n", textparse.Truncate(t.User, historyPreview, ""))
		fmt.Fprintf(r.out, "  Assistant: %s...\n", textparse.Truncate(t.Assistant, historyPreview, ""))
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) runDemo(ctx context.Context) {
	heavy := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(r.out, "\n"+heavy)
	titleColor.Fprintln(r.out, "DEMONSTRATION MODE")
	fmt.Fprintln(r.out, "Running sample queries for each capability...")
	fmt.Fprintln(r.out, heavy)

	for _, d := range demoQueries {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintln(r.out, "\n"+heavy)
		fmt.Fprintf(r.out, "[%s]\n", d.Title)
		fmt.Fprintf(r.out, "User: %s\n", d.Query)
		fmt.Fprintln(r.out, strings.Repeat("-", ruleWidth))

		resp := r.conv.Process(ctx, orchestrator.ProcessInput{Message: d.Query})
		fmt.Fprintf(r.out, "Agent Used: %s\n", resp.Label)
		fmt.Fprintf(r.out, "\nResponse:\n%s\n", textparse.Truncate(resp.Display, demoPreview, ""))
		if len([]rune(resp.Display)) > demoPreview {
			dimColor.Fprintln(r.out, truncatedMessage)
		}

		fmt.Fprintln(r.out)
		fmt.Fprint(r.out, "Press Enter to continue...")
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return
		}
	}

	fmt.Fprintln(r.out, "\n"+heavy)
	fmt.Fprintln(r.out, "Demonstration complete!")
	fmt.Fprintln(r.out, heavy)
}
