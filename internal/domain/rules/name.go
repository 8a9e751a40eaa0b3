package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// MaxNameLength caps the name field.
const MaxNameLength = 64

// namePattern: lowercase alphanumeric runs separated by single hyphens, no
// leading or trailing hyphen.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NamePresent requires a non-empty name field.
func NamePresent(fields domain.FieldMap) domain.CheckResult {
	name, ok := fields.StringField(domain.FieldName)
	if !ok || strings.TrimSpace(name) == "" {
		return fail(domain.CheckNamePresent, `required field "name" is missing or empty`)
	}
	return pass(domain.CheckNamePresent, fmt.Sprintf("name: %q", name))
}

// NameFormat requires the hyphenated lowercase form. Absence is owned by
// NamePresent; this check passes vacuously then.
func NameFormat(fields domain.FieldMap) domain.CheckResult {
	name, ok := fields.StringField(domain.FieldName)
	if !ok || name == "" {
		return pass(domain.CheckNameFormat, "name not set")
	}
	if !namePattern.MatchString(name) {
		msg := fmt.Sprintf("name %q must be lowercase alphanumerics separated by single hyphens", name)
		if candidate := kebabCase(name); candidate != "" && candidate != name {
			msg += fmt.Sprintf(" (did you mean %q?)", candidate)
		}
		return fail(domain.CheckNameFormat, msg)
	}
	return pass(domain.CheckNameFormat, "name format ok")
}

// NameLength caps the name at MaxNameLength characters.
func NameLength(fields domain.FieldMap) domain.CheckResult {
	name, ok := fields.StringField(domain.FieldName)
	if !ok || name == "" {
		return pass(domain.CheckNameLength, "name not set")
	}
	if len(name) > MaxNameLength {
		return fail(domain.CheckNameLength,
			fmt.Sprintf("name is %d characters (limit %d)", len(name), MaxNameLength))
	}
	return pass(domain.CheckNameLength, fmt.Sprintf("name length %d within limit", len(name)))
}

// NameReservedWords rejects names containing any denylisted term as a
// case-insensitive substring. The message names every matched term.
func NameReservedWords(fields domain.FieldMap, denylist []string) domain.CheckResult {
	name, ok := fields.StringField(domain.FieldName)
	if !ok || name == "" {
		return pass(domain.CheckNameReservedWords, "name not set")
	}
	lower := strings.ToLower(name)
	var matched []string
	for _, word := range denylist {
		if strings.Contains(lower, strings.ToLower(word)) {
			matched = append(matched, word)
		}
	}
	if len(matched) > 0 {
		return fail(domain.CheckNameReservedWords,
			"name contains reserved words: "+strings.Join(matched, ", "))
	}
	return pass(domain.CheckNameReservedWords, "no reserved words in name")
}

// NameDirectoryMatch wants the name to equal the skill directory's base
// name, case-sensitively. Advisory only.
func NameDirectoryMatch(fields domain.FieldMap, dirName string) domain.CheckResult {
	name, ok := fields.StringField(domain.FieldName)
	if !ok || name == "" {
		return pass(domain.CheckNameDirectoryMatch, "name not set")
	}
	if name != dirName {
		return fail(domain.CheckNameDirectoryMatch,
			fmt.Sprintf("name %q does not match directory name %q", name, dirName))
	}
	return pass(domain.CheckNameDirectoryMatch, "name matches directory")
}

// kebabCase proposes a compliant candidate for an invalid name: camel-case
// boundaries become hyphens, everything lowercases, non-alphanumeric runs
// collapse into single separators.
func kebabCase(name string) string {
	var segments []string
	for _, word := range camelcase.Split(name) {
		cleaned := nonAlnum.ReplaceAllString(strings.ToLower(word), "")
		if cleaned != "" {
			segments = append(segments, cleaned)
		}
	}
	return strings.Join(segments, "-")
}
