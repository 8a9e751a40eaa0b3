package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skillcheck/skillcheck/internal/adapters/outbound/config"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/scanner"
	"github.com/skillcheck/skillcheck/internal/adapters/outbound/watcher"
	"github.com/skillcheck/skillcheck/internal/application"
	"github.com/skillcheck/skillcheck/internal/domain"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <skill-dir>",
		Short: "Revalidate a skill whenever its files change",
		Long:  "Watch a skill directory and rerun validation after each settled batch of file changes. Stops on Ctrl-C.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skillPath := args[0]

			svc := application.NewValidateService(scanner.New(), config.New())

			w, err := watcher.New(skillPath)
			if err != nil {
				return fmt.Errorf("creating watcher: %w", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := w.Start(ctx); err != nil {
				return fmt.Errorf("watching %s: %w", skillPath, err)
			}
			defer w.Stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %s (Ctrl-C to stop)\n", skillPath)
			printRun(out, svc.Validate(ctx, skillPath))

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-w.C:
					printRun(out, svc.Validate(ctx, skillPath))
				}
			}
		},
	}

	return cmd
}

// printRun writes one log-style line per validation run.
func printRun(w io.Writer, report *domain.Report) {
	verdict := color.GreenString("PASS")
	if !report.Valid {
		verdict = color.RedString("FAIL")
	}

	counts := fmt.Sprintf("%d error(s), %d warning(s)", report.ErrorCount(), report.WarningCount())
	if report.Valid && report.WarningCount() > 0 {
		counts = color.YellowString(counts)
	}

	fmt.Fprintf(w, "[%s] %s %s  %s\n", time.Now().Format("15:04:05"), verdict, report.SkillName, counts)
}
