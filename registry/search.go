package registry

import "strings"

// Field selects which Record fields participate in a Search.
type Field string

// Searchable fields. Values outside this set are ignored by Search rather
// than rejected: Search never fails, and the typed constants make an unknown
// field a caller-side anomaly instead of a runtime condition.
const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldTags        Field = "tags"
)

// defaultSearchFields is used when a Search call names no fields.
var defaultSearchFields = []Field{FieldName, FieldDescription, FieldTags}

// Search returns the names whose record matches query in any of the selected
// fields, in insertion order and without duplicates. Matching is
// case-insensitive substring: name and description match on their value,
// tags match if any single tag contains the query. An empty query matches
// every record. When no fields are given, name, description, and tags are
// all searched.
func (r *Registry) Search(query string, fields ...Field) []string {
	if len(fields) == 0 {
		fields = defaultSearchFields
	}
	q := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0)
	for _, name := range r.order {
		if matchRecord(r.records[name], q, fields) {
			names = append(names, name)
		}
	}
	return names
}

// matchRecord reports whether any selected field contains the lower-cased
// query. A record is appended at most once because matching short-circuits
// on the first hit.
func matchRecord(rec *Record, q string, fields []Field) bool {
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.Contains(strings.ToLower(rec.Name), q) {
				return true
			}
		case FieldDescription:
			if strings.Contains(strings.ToLower(rec.Description), q) {
				return true
			}
		case FieldTags:
			for _, t := range rec.Tags {
				if strings.Contains(strings.ToLower(t), q) {
					return true
				}
			}
		}
	}
	return false
}
