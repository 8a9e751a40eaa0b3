// Package frontmatter extracts the YAML header block from a skill document.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// Delimiter opens and closes the frontmatter block.
const Delimiter = "---"

// Tagged extraction failures. The validation run records them as a failed
// frontmatter check; field rules are skipped afterwards while document
// rules still run.
var (
	ErrMissingFrontmatter      = errors.New("missing frontmatter")
	ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter")
	ErrMalformedFrontmatter    = errors.New("malformed frontmatter")
)

// Extract decodes the frontmatter at the top of a skill document into a
// FieldMap. The document must start with the delimiter, contain a closing
// delimiter, and the block between them must decode to a YAML mapping.
// Empty input reads as a missing header.
func Extract(doc string) (domain.FieldMap, error) {
	if !strings.HasPrefix(doc, Delimiter) {
		return nil, fmt.Errorf("%w: document must start with %q", ErrMissingFrontmatter, Delimiter)
	}

	// The first two delimiter occurrences bound the block; everything after
	// the second is document body.
	parts := strings.SplitN(doc, Delimiter, 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: closing %q not found", ErrUnterminatedFrontmatter, Delimiter)
	}

	var fields domain.FieldMap
	if err := yaml.Unmarshal([]byte(parts[1]), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}
	if fields == nil {
		fields = domain.FieldMap{}
	}

	return fields, nil
}
