package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcheck/skillcheck/internal/adapters/outbound/config"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/scanner"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/tui"
	"github.com/skillcheck/skillcheck/internal/application"
	"github.com/skillcheck/skillcheck/internal/domain"
)

func newListCmd() *cobra.Command {
	var (
		jsonOutput  bool
		invalidOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "Discover and validate every skill under a directory",
		Long:  "Walk a directory tree, validate every skill package found, and summarize the results. Exits 1 when any skill is invalid.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			sc := scanner.New()
			svc := application.NewDiscoverService(sc, application.NewValidateService(sc, config.New()))

			reports, err := svc.ValidateAll(cmd.Context(), root)
			if err != nil {
				return err
			}

			invalidCount := countInvalid(reports)

			shown := reports
			if invalidOnly {
				shown = filterInvalid(reports)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(shown); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSkillList(shown))
			}

			// The exit code reflects every discovered skill, not just the
			// displayed subset.
			if invalidCount > 0 {
				return fmt.Errorf("%d skill(s) failed validation", invalidCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the reports as JSON")
	cmd.Flags().BoolVar(&invalidOnly, "invalid-only", false, "Show only invalid skills")

	return cmd
}

func countInvalid(reports []*domain.Report) int {
	n := 0
	for _, r := range reports {
		if !r.Valid {
			n++
		}
	}
	return n
}

func filterInvalid(reports []*domain.Report) []*domain.Report {
	filtered := make([]*domain.Report, 0, len(reports))
	for _, r := range reports {
		if !r.Valid {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
