package domain

import (
	"fmt"
	"strings"
)

// DefaultMaxDocumentLines is the advisory ceiling on skill document length.
const DefaultMaxDocumentLines = 500

// BuiltinReservedWords are denied in skill names, case-insensitively and as
// substrings. Configuration can extend this list, never shrink it.
var BuiltinReservedWords = []string{"claude", "anthropic"}

// RuleConfig tunes the advisory side of the rule battery. It is loaded from
// .skillcheck.yaml next to SKILL.md; defaults apply when the file is absent.
type RuleConfig struct {
	ReservedWords    []string `yaml:"reserved_words"     json:"reserved_words,omitempty"`
	MaxDocumentLines int      `yaml:"max_document_lines" json:"max_document_lines,omitempty"`
	SkipChecks       []string `yaml:"skip_checks"        json:"skip_checks,omitempty"`
}

// DefaultRuleConfig returns the configuration used when no file is present.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{MaxDocumentLines: DefaultMaxDocumentLines}
}

// EffectiveReservedWords returns the builtin denylist extended by the
// configured extras.
func (c RuleConfig) EffectiveReservedWords() []string {
	words := make([]string, 0, len(BuiltinReservedWords)+len(c.ReservedWords))
	words = append(words, BuiltinReservedWords...)
	words = append(words, c.ReservedWords...)
	return words
}

// IsSkipped reports whether the named check is disabled by configuration.
func (c RuleConfig) IsSkipped(name string) bool {
	for _, s := range c.SkipChecks {
		if s == name {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive
// error.
func (c RuleConfig) Validate() error {
	// 1. max_document_lines must not be negative (zero means default)
	if c.MaxDocumentLines < 0 {
		return fmt.Errorf("max_document_lines must be positive (got %d)", c.MaxDocumentLines)
	}

	// 2. skip_checks may only name known warning/info-tier checks
	for _, name := range c.SkipChecks {
		if _, ok := checkSeverity[name]; !ok {
			return fmt.Errorf("unknown check %q in skip_checks", name)
		}
		if !Skippable(name) {
			return fmt.Errorf("check %q is %s tier and cannot be skipped", name, SeverityFor(name))
		}
	}

	// 3. reserved word extras must be non-empty
	for i, w := range c.ReservedWords {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("reserved_words[%d] is empty", i)
		}
	}

	return nil
}
