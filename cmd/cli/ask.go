package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"multi-agent-assistant/internal/agent/orchestrator"
	"multi-agent-assistant/internal/router"
)

var (
	askAgent string
	askJSON  bool
)

func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask a single question and print the answer",
		Example: `  assistant ask "What is the average salary by department?"
  assistant ask --agent rag "How much PTO do I get?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askAgent, "agent", "", "Skip classification and use this agent (sql, rag, weather, recommend, image, general)")
	cmd.Flags().BoolVar(&askJSON, "json", false, "Print the full response envelope as JSON")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	in := orchestrator.ProcessInput{Message: strings.Join(args, " ")}
	if askAgent != "" {
		label, ok := router.ParseLabel(askAgent)
		if !ok {
			return fmt.Errorf("unknown agent %q", askAgent)
		}
		in.ForceLabel = label
	}

	ctx := cmd.Context()
	assistant, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer assistant.Close()

	sessions := assistant.Sessions()
	resp := sessions.Get(sessions.NewID()).Process(ctx, in)

	out := cmd.OutOrStdout()
	if askJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Fprintf(out, "[%s] %s\n", resp.Label, resp.Display)
	if resp.Error != "" {
		return fmt.Errorf("%s agent failed: %s", resp.Label, resp.Error)
	}
	return nil
}
