package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillcheck/skillcheck/internal/domain"
	"github.com/skillcheck/skillcheck/internal/domain/rules"
)

func TestAllowedTools_Declared(t *testing.T) {
	c := rules.AllowedTools(domain.FieldMap{
		domain.FieldAllowedTools: []any{"Read", "Bash"},
	})
	assert.True(t, c.Passed)
	assert.Contains(t, c.Message, "2 tool(s)")
}

func TestAllowedTools_Absent(t *testing.T) {
	c := rules.AllowedTools(domain.FieldMap{})
	assert.True(t, c.Passed)
	assert.Contains(t, c.Message, "not declared")
}

func TestAllowedTools_ScalarReadsAsAbsent(t *testing.T) {
	c := rules.AllowedTools(domain.FieldMap{domain.FieldAllowedTools: "Read"})
	assert.True(t, c.Passed)
	assert.Contains(t, c.Message, "not declared")
}

func TestLicense_Declared(t *testing.T) {
	c := rules.License(domain.FieldMap{domain.FieldLicense: "Apache-2.0"})
	assert.True(t, c.Passed)
	assert.Contains(t, c.Message, "Apache-2.0")
}

func TestLicense_Absent(t *testing.T) {
	c := rules.License(domain.FieldMap{})
	assert.True(t, c.Passed)
	assert.Contains(t, c.Message, "not declared")
}

func TestMetadataFields_SubKeys(t *testing.T) {
	c := rules.MetadataFields(domain.FieldMap{
		domain.FieldMetadata: map[string]any{
			"version":      "1.0.0",
			"dependencies": []any{"pdfplumber"},
		},
	})
	assert.True(t, c.Passed)
	assert.Contains(t, c.Message, "version")
	assert.Contains(t, c.Message, "dependencies")
}

func TestMetadataFields_EmptyMapping(t *testing.T) {
	c := rules.MetadataFields(domain.FieldMap{domain.FieldMetadata: map[string]any{}})
	assert.True(t, c.Passed)
	assert.Equal(t, "metadata declared", c.Message)
}

func TestMetadataFields_Absent(t *testing.T) {
	c := rules.MetadataFields(domain.FieldMap{})
	assert.True(t, c.Passed)
	assert.Contains(t, c.Message, "not declared")
}
