package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"multi-agent-assistant/internal/seed"
)

var (
	seedCompany  string
	seedEvents   string
	seedHandbook string
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create company.db, events.db and the employee handbook",
		Long: `Creates the sample data the assistant answers from. Existing tables are
dropped and recreated. Event dates start today.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			sum, err := seed.All(cmd.Context(), seed.Options{
				CompanyPath:  seedCompany,
				EventsPath:   seedEvents,
				HandbookPath: seedHandbook,
				Today:        start,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ok := color.New(color.FgGreen).SprintFunc()
			if seedCompany != "" {
				fmt.Fprintf(out, "%s %s: %d departments, %d employees, %d projects\n",
					ok("✓"), seedCompany, sum.Departments, sum.Employees, sum.Projects)
			}
			if seedEvents != "" {
				fmt.Fprintf(out, "%s %s: %d events from %s\n", ok("✓"), seedEvents, sum.Events, start.Format("2006-01-02"))
			}
			if seedHandbook != "" {
				fmt.Fprintf(out, "%s %s\n", ok("✓"), seedHandbook)
			}
			fmt.Fprintf(out, "Done in %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&seedCompany, "company", "company.db", "Company database path (empty to skip)")
	cmd.Flags().StringVar(&seedEvents, "events", "events.db", "Events database path (empty to skip)")
	cmd.Flags().StringVar(&seedHandbook, "handbook", "employee_handbook.txt", "Handbook output path (empty to skip)")

	return cmd
}
