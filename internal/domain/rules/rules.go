// Package rules implements the fixed validation battery for skill packages.
// Each check is an independent pure function producing a named CheckResult;
// the runners execute the battery in a stable order and leave severity
// classification to the report.
package rules

import (
	"github.com/skillcheck/skillcheck/internal/domain"
)

// FieldChecks runs every header-dependent rule against the decoded
// frontmatter. dirName is the base name of the skill directory.
func FieldChecks(fields domain.FieldMap, dirName string, cfg domain.RuleConfig) []domain.CheckResult {
	checks := []domain.CheckResult{
		NamePresent(fields),
		NameFormat(fields),
		NameLength(fields),
		NameReservedWords(fields, cfg.EffectiveReservedWords()),
		NameDirectoryMatch(fields, dirName),
		DescriptionPresent(fields),
		DescriptionLength(fields),
		DescriptionMarkup(fields),
		DescriptionUsageGuidance(fields),
		DescriptionVoice(fields),
		AllowedTools(fields),
		License(fields),
		MetadataFields(fields),
	}
	return applySkips(checks, cfg)
}

// DocumentChecks runs every rule that depends only on the raw document text
// and the file tree. These execute even when the header failed to parse.
func DocumentChecks(doc string, files []string, listingErr error, cfg domain.RuleConfig) []domain.CheckResult {
	checks := []domain.CheckResult{
		DocumentLength(doc, cfg.MaxDocumentLines),
		WindowsPaths(doc),
		FileListing(files, listingErr),
	}
	return applySkips(checks, cfg)
}

// applySkips replaces configured-off checks with skipped placeholders so
// reports always show the full battery.
func applySkips(checks []domain.CheckResult, cfg domain.RuleConfig) []domain.CheckResult {
	for i, c := range checks {
		if cfg.IsSkipped(c.Name) && domain.Skippable(c.Name) {
			checks[i] = domain.CheckResult{
				Name:    c.Name,
				Passed:  true,
				Skipped: true,
				Message: "skipped by configuration",
			}
		}
	}
	return checks
}

func pass(name, message string) domain.CheckResult {
	return domain.CheckResult{Name: name, Passed: true, Message: message}
}

func fail(name, message string) domain.CheckResult {
	return domain.CheckResult{Name: name, Passed: false, Message: message}
}
