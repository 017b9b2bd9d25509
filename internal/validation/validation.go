package validation

import (
	"sort"
	"strings"
)

// Violations maps a field name to the rule it broke.
// A non-empty Violations doubles as the error returned to the caller.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Error renders violations as "field: rule" pairs in field order.
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return strings.Join(parts, "; ")
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NotEmptySlice[T any](field string, s []T, v Violations) {
	if len(s) == 0 {
		v[field] = "required"
	}
}
