package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcheck/skillcheck/internal/adapters/outbound/history"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/tui"
	"github.com/skillcheck/skillcheck/internal/domain"
)

func newHistoryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history <skill-dir>",
		Short: "Show recorded validation runs for a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir, err := history.DefaultBaseDir()
			if err != nil {
				return fmt.Errorf("resolving history location: %w", err)
			}

			entries, err := history.New(baseDir).Load(args[0])
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.RunEntry{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
