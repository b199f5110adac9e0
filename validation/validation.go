// Package validation decodes JSON request bodies and checks them against
// struct-tag schemas, keeping parse failures apart from schema violations.
package validation

import (
	"sort"
	"strings"
)

// Violations maps a JSON field path to a human message.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records msg for field unless the field already has a message.
func (v Violations) Add(field, msg string) {
	if _, ok := v[field]; !ok {
		v[field] = msg
	}
}

// Error joins the violations as "field: message" pairs ordered by field.
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + v[f]
	}
	return strings.Join(parts, ", ")
}
