package rules

import (
	"fmt"
	"strings"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// Optional-field checks pass regardless of presence; they exist so the
// report documents what a skill declares. Malformed shapes (a scalar where
// a list or mapping belongs) read as absent.

// AllowedTools reports whether the optional allowed-tools list is declared.
func AllowedTools(fields domain.FieldMap) domain.CheckResult {
	tools, ok := fields.ListField(domain.FieldAllowedTools)
	if !ok {
		return pass(domain.CheckAllowedTools, "allowed-tools not declared (optional)")
	}
	return pass(domain.CheckAllowedTools, fmt.Sprintf("allowed-tools declares %d tool(s)", len(tools)))
}

// License reports whether the optional license scalar is declared.
func License(fields domain.FieldMap) domain.CheckResult {
	license, ok := fields.StringField(domain.FieldLicense)
	if !ok || license == "" {
		return pass(domain.CheckLicense, "license not declared (optional)")
	}
	return pass(domain.CheckLicense, "license: "+license)
}

// MetadataFields reports the optional metadata mapping and which of its
// version and dependencies sub-keys are present.
func MetadataFields(fields domain.FieldMap) domain.CheckResult {
	meta, ok := fields.MapField(domain.FieldMetadata)
	if !ok {
		return pass(domain.CheckMetadataFields, "metadata not declared (optional)")
	}
	var subs []string
	for _, key := range []string{"version", "dependencies"} {
		if _, ok := meta[key]; ok {
			subs = append(subs, key)
		}
	}
	if len(subs) == 0 {
		return pass(domain.CheckMetadataFields, "metadata declared")
	}
	return pass(domain.CheckMetadataFields, "metadata declared with "+strings.Join(subs, ", "))
}
