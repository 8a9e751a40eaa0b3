package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillcheck/skillcheck/internal/adapters/outbound/config"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/gitinfo"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/history"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/scanner"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/tui"
	"github.com/skillcheck/skillcheck/internal/application"
	"github.com/skillcheck/skillcheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		verbose    bool
		noHistory  bool
	)

	cmd := &cobra.Command{
		Use:   "validate <skill-dir>",
		Short: "Validate a skill package",
		Long:  "Parse the skill directory's SKILL.md frontmatter and run the full check battery. Exits 1 when any blocking error is found.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewValidateService(scanner.New(), config.New())

			report := svc.Validate(cmd.Context(), args[0])

			// Bookkeeping never affects the verdict.
			if !noHistory {
				saveRun(report)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, verbose))
			}

			if !report.Valid {
				return fmt.Errorf("skill %s is invalid: %d blocking error(s)", report.SkillName, report.ErrorCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show passing checks too")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run")

	return cmd
}

// saveRun appends a history entry for the run, attaching the commit hash
// when the skill lives inside a git repository. Best-effort.
func saveRun(report *domain.Report) {
	baseDir, err := history.DefaultBaseDir()
	if err != nil {
		return
	}

	entry := domain.RunEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Valid:     report.Valid,
		Errors:    report.ErrorCount(),
		Warnings:  report.WarningCount(),
	}
	if hash, err := gitinfo.New().CommitHash(report.SkillPath); err == nil {
		entry.CommitHash = hash
	}

	_ = history.New(baseDir).Save(report.SkillPath, entry)
}
