package domain

// Frontmatter field names recognized by the rule battery.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldAllowedTools = "allowed-tools"
	FieldLicense      = "license"
	FieldMetadata     = "metadata"
)

// FieldMap holds the decoded frontmatter of a skill document. It is
// produced once per run by the extractor and treated as read-only by every
// consumer.
type FieldMap map[string]any

// StringField returns the field as a scalar string. ok is false when the
// field is absent or has another shape.
func (m FieldMap) StringField(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ListField returns the field as a list. Non-list shapes read as absent;
// optional-field handling stays permissive that way.
func (m FieldMap) ListField(key string) ([]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// MapField returns the field as a nested mapping. Non-mapping shapes read
// as absent.
func (m FieldMap) MapField(key string) (map[string]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	mm, ok := v.(map[string]any)
	return mm, ok
}
