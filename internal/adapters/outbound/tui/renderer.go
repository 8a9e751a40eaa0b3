package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// ── warm terminal palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a validation report for the terminal. Failed checks
// are always shown; passing and skipped ones only in verbose mode.
func RenderReport(report *domain.Report, verbose bool) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("skillcheck")
	name := titleStyle.Render(report.SkillName)
	b.WriteString(boxStyle.Render(title + "\n" + name + "\n\n" + verdictBadge(report.Valid)))
	b.WriteString("\n\n")

	// ── Findings ──
	failed := report.FailedChecks()
	if len(failed) > 0 {
		errorCount := report.ErrorCount()
		warnCount := report.WarningCount()
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Findings"))
		b.WriteString("  ")
		if errorCount > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errorCount)))
			b.WriteString("  ")
		}
		if warnCount > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnCount)))
		}
		b.WriteString("\n\n")

		for _, check := range failed {
			renderFailedCheck(&b, check)
		}
	} else {
		b.WriteString("  " + passStyle.Render("All checks passed.") + "\n")
	}

	// ── Full battery ──
	if verbose {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine)
		b.WriteString("\n\n")
		for _, check := range report.PassedChecks() {
			renderPassedCheck(&b, check)
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d checks  %s", len(report.Checks), report.SkillPath)))
	b.WriteString("\n")
	return b.String()
}

func renderFailedCheck(b *strings.Builder, check domain.CheckResult) {
	tag := severityTag(domain.SeverityFor(check.Name))
	fmt.Fprintf(b, "    %s %s\n", tag, titleStyle.Render(check.Name))
	fmt.Fprintf(b, "          %s\n", dimStyle.Render(check.Message))
}

func renderPassedCheck(b *strings.Builder, check domain.CheckResult) {
	name := padRight(check.Name, 28)

	if check.Skipped {
		fmt.Fprintf(b, "    %s %s %s\n",
			skipStyle.Render("○"),
			skipStyle.Render(name),
			skipStyle.Render("skipped"),
		)
		return
	}

	fmt.Fprintf(b, "    %s %s %s\n", passStyle.Render("●"), name, faintStyle.Render(check.Message))
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func verdictBadge(valid bool) string {
	if valid {
		return lipgloss.NewStyle().Bold(true).Foreground(success).Render("VALID")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(danger).Render("INVALID")
}

// RenderSkillList renders one line per discovered skill.
func RenderSkillList(reports []*domain.Report) string {
	if len(reports) == 0 {
		return "  " + dimStyle.Render("No skills found.") + "\n"
	}

	validCount := 0
	for _, r := range reports {
		if r.Valid {
			validCount++
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Skills (%d)", len(reports))))
	b.WriteString("  ")
	b.WriteString(passStyle.Render(fmt.Sprintf("%d valid", validCount)))
	if invalid := len(reports) - validCount; invalid > 0 {
		b.WriteString("  ")
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d invalid", invalid)))
	}
	b.WriteString("\n\n")

	for _, r := range reports {
		icon := passStyle.Render("●")
		if !r.Valid {
			icon = failStyle.Render("●")
		}

		counts := ""
		if n := r.ErrorCount(); n > 0 {
			counts += "  " + errorTagStyle.Render(fmt.Sprintf("%d errors", n))
		}
		if n := r.WarningCount(); n > 0 {
			counts += "  " + warnTagStyle.Render(fmt.Sprintf("%d warnings", n))
		}

		fmt.Fprintf(&b, "  %s %s %s%s\n",
			icon,
			padRight(r.SkillName, 24),
			fileStyle.Render(shortenPath(r.SkillPath)),
			counts,
		)
	}

	return b.String()
}

// RenderHistory formats recorded validation runs for terminal output,
// oldest first.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No validation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Validation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		verdict := passStyle.Render("valid  ")
		if !e.Valid {
			verdict = failStyle.Render("invalid")
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(day),
			faintStyle.Render(hash),
			verdict,
			dimStyle.Render(fmt.Sprintf("%d errors, %d warnings", e.Errors, e.Warnings)),
		)

		if i > 0 {
			diff := e.Errors - entries[i-1].Errors
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func shortenPath(path string) string {
	if idx := strings.Index(path, "skills/"); idx >= 0 {
		return path[idx:]
	}
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
