package main

import (
	"os"

	"github.com/spf13/cobra"

	"multi-agent-assistant/internal/cli"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			assistant, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer assistant.Close()

			sessions := assistant.Sessions()
			conv := sessions.Get(sessions.NewID())
			return cli.NewREPL(conv, os.Stdin, cmd.OutOrStdout()).Run(ctx)
		},
	}
}
