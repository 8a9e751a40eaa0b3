package frontmatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcheck/skillcheck/internal/domain/frontmatter"
)

func TestExtract_ValidDocument(t *testing.T) {
	doc := "---\nname: pdf-processing\ndescription: Extracts text from PDFs.\n---\n\n# Body\n"

	fields, err := frontmatter.Extract(doc)
	require.NoError(t, err)

	name, ok := fields.StringField("name")
	assert.True(t, ok)
	assert.Equal(t, "pdf-processing", name)

	desc, ok := fields.StringField("description")
	assert.True(t, ok)
	assert.Equal(t, "Extracts text from PDFs.", desc)
}

func TestExtract_MissingFrontmatter(t *testing.T) {
	_, err := frontmatter.Extract("# Just a heading\n\nNo header here.\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, frontmatter.ErrMissingFrontmatter)
	assert.Contains(t, err.Error(), "must start with")
}

func TestExtract_EmptyDocument(t *testing.T) {
	_, err := frontmatter.Extract("")
	assert.ErrorIs(t, err, frontmatter.ErrMissingFrontmatter)
}

func TestExtract_LeadingBlankLine(t *testing.T) {
	_, err := frontmatter.Extract("\n---\nname: x\n---\n")
	assert.ErrorIs(t, err, frontmatter.ErrMissingFrontmatter, "delimiter must be the very first bytes")
}

func TestExtract_Unterminated(t *testing.T) {
	_, err := frontmatter.Extract("---\nname: pdf-processing\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, frontmatter.ErrUnterminatedFrontmatter)
	assert.Contains(t, err.Error(), "closing")
}

func TestExtract_MalformedYAML(t *testing.T) {
	_, err := frontmatter.Extract("---\nname: [unclosed\n---\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, frontmatter.ErrMalformedFrontmatter)
}

func TestExtract_ScalarHeaderIsMalformed(t *testing.T) {
	_, err := frontmatter.Extract("---\njust a sentence\n---\n")
	assert.ErrorIs(t, err, frontmatter.ErrMalformedFrontmatter, "header must decode to a mapping")
}

func TestExtract_EmptyBlock(t *testing.T) {
	fields, err := frontmatter.Extract("---\n---\n# Body\n")
	require.NoError(t, err)
	assert.NotNil(t, fields)
	assert.Empty(t, fields)
}

func TestExtract_BodyAfterCloseIgnored(t *testing.T) {
	doc := "---\nname: x\n---\nThe body may mention --- again without effect.\n"
	fields, err := frontmatter.Extract(doc)
	require.NoError(t, err)
	name, _ := fields.StringField("name")
	assert.Equal(t, "x", name)
}

func TestExtract_NestedFieldsSurvive(t *testing.T) {
	doc := "---\nname: x\nmetadata:\n  version: \"2.0\"\n  dependencies:\n    - foo\n---\n"
	fields, err := frontmatter.Extract(doc)
	require.NoError(t, err)

	meta, ok := fields.MapField("metadata")
	require.True(t, ok)
	assert.Equal(t, "2.0", meta["version"])
}
