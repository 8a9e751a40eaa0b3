package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// MaxDescriptionLength caps the description field.
const MaxDescriptionLength = 1024

// usageTriggers are the fixed phrases accepted as when-to-use guidance.
// None of them contains a second-person pronoun, so guidance phrasing never
// collides with the voice heuristic.
var usageTriggers = []string{
	"use when",
	"use this",
	"use for",
	"when the user",
	"when working with",
	"for tasks",
}

// Voice patterns catch literal pronouns only; paraphrased self-reference
// slips through.
var (
	firstPersonPattern  = regexp.MustCompile(`(?i)\b(?:i|we)\s+(?:am|are|can|will|help|assist|provide|handle|use)\b|\b(?:my|me|our)\b`)
	secondPersonPattern = regexp.MustCompile(`(?i)\b(?:you|your|yours|yourself)\b`)
)

// DescriptionPresent requires a non-empty description field.
func DescriptionPresent(fields domain.FieldMap) domain.CheckResult {
	desc, ok := fields.StringField(domain.FieldDescription)
	if !ok || strings.TrimSpace(desc) == "" {
		return fail(domain.CheckDescriptionPresent, `required field "description" is missing or empty`)
	}
	return pass(domain.CheckDescriptionPresent,
		fmt.Sprintf("description present (%d characters)", len(desc)))
}

// DescriptionLength caps the description at MaxDescriptionLength characters.
func DescriptionLength(fields domain.FieldMap) domain.CheckResult {
	desc, ok := fields.StringField(domain.FieldDescription)
	if !ok || desc == "" {
		return pass(domain.CheckDescriptionLength, "description not set")
	}
	if len(desc) > MaxDescriptionLength {
		return fail(domain.CheckDescriptionLength,
			fmt.Sprintf("description is %d characters (limit %d)", len(desc), MaxDescriptionLength))
	}
	return pass(domain.CheckDescriptionLength, "description length within limit")
}

// DescriptionMarkup rejects angle brackets anywhere in the description.
func DescriptionMarkup(fields domain.FieldMap) domain.CheckResult {
	desc, ok := fields.StringField(domain.FieldDescription)
	if !ok || desc == "" {
		return pass(domain.CheckDescriptionMarkup, "description not set")
	}
	if strings.ContainsAny(desc, "<>") {
		return fail(domain.CheckDescriptionMarkup, "description must not contain angle brackets")
	}
	return pass(domain.CheckDescriptionMarkup, "no markup in description")
}

// DescriptionUsageGuidance wants at least one trigger phrase telling an
// agent when the skill applies. Advisory only.
func DescriptionUsageGuidance(fields domain.FieldMap) domain.CheckResult {
	desc, ok := fields.StringField(domain.FieldDescription)
	if !ok || desc == "" {
		return pass(domain.CheckDescriptionUsageGuidance, "description not set")
	}
	lower := strings.ToLower(desc)
	for _, phrase := range usageTriggers {
		if strings.Contains(lower, phrase) {
			return pass(domain.CheckDescriptionUsageGuidance,
				fmt.Sprintf("usage guidance found (%q)", phrase))
		}
	}
	return fail(domain.CheckDescriptionUsageGuidance,
		`description should say when to use the skill (e.g. "Use when ...")`)
}

// DescriptionVoice flags first- or second-person phrasing; descriptions
// read as third-person capability statements. One match per category is
// enough.
func DescriptionVoice(fields domain.FieldMap) domain.CheckResult {
	desc, ok := fields.StringField(domain.FieldDescription)
	if !ok || desc == "" {
		return pass(domain.CheckDescriptionVoice, "description not set")
	}
	var matched []string
	if m := firstPersonPattern.FindString(desc); m != "" {
		matched = append(matched, fmt.Sprintf("first person (%q)", m))
	}
	if m := secondPersonPattern.FindString(desc); m != "" {
		matched = append(matched, fmt.Sprintf("second person (%q)", m))
	}
	if len(matched) > 0 {
		return fail(domain.CheckDescriptionVoice,
			"description should use third person: "+strings.Join(matched, ", "))
	}
	return pass(domain.CheckDescriptionVoice, "third-person voice")
}
