package rules

import "github.com/skillcheck/skillcheck/internal/domain"

// RuleInfo documents one check for consumers that want the battery
// described rather than run.
type RuleInfo struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Summary  string `json:"summary"`
}

var ruleSummaries = []struct {
	name    string
	summary string
}{
	{domain.CheckSkillDirectory, "the skill path exists and is a directory"},
	{domain.CheckSkillFile, "the skill directory contains a SKILL.md document"},
	{domain.CheckFrontmatter, "SKILL.md starts with a well-formed YAML frontmatter block"},
	{domain.CheckNamePresent, "the name field is present and non-empty"},
	{domain.CheckNameFormat, "the name is lowercase alphanumerics separated by single hyphens"},
	{domain.CheckNameLength, "the name is at most 64 characters"},
	{domain.CheckNameReservedWords, "the name avoids reserved words such as claude and anthropic"},
	{domain.CheckNameDirectoryMatch, "the name matches the skill directory name"},
	{domain.CheckDescriptionPresent, "the description field is present and non-empty"},
	{domain.CheckDescriptionLength, "the description is at most 1024 characters"},
	{domain.CheckDescriptionMarkup, "the description contains no angle-bracket markup"},
	{domain.CheckDescriptionUsageGuidance, "the description says when to use the skill"},
	{domain.CheckDescriptionVoice, "the description is written in third person"},
	{domain.CheckAllowedTools, "whether the optional allowed-tools field is declared"},
	{domain.CheckLicense, "whether the optional license field is declared"},
	{domain.CheckMetadataFields, "which optional metadata sub-fields are declared"},
	{domain.CheckDocumentLength, "the document stays within the advisory line limit"},
	{domain.CheckWindowsPaths, "the document uses forward-slash paths only"},
	{domain.CheckFileListing, "the files under the skill directory could be enumerated"},
}

// Describe returns the full check battery in execution order, structural
// checks first.
func Describe() []RuleInfo {
	infos := make([]RuleInfo, 0, len(ruleSummaries))
	for _, r := range ruleSummaries {
		infos = append(infos, RuleInfo{
			Name:     r.name,
			Severity: domain.SeverityFor(r.name),
			Summary:  r.summary,
		})
	}
	return infos
}
