package services

import (
	"strings"

	"github.com/burak/campusplace/internal/pkg/spreadsheet"
)

// Filter is either unfiltered or an exact-match constraint on one partition
// key. The zero value is unfiltered, so a missing query parameter needs no
// special casing downstream.
type Filter struct {
	value    string
	filtered bool
}

// Unfiltered returns the filter that matches every value.
func Unfiltered() Filter {
	return Filter{}
}

// Equals returns a filter matching exactly the given canonical value.
func Equals(value string) Filter {
	return Filter{value: value, filtered: true}
}

// YearFilter parses a raw class-year query value. Empty input and the
// literal "all" (any case) mean unfiltered; anything else is canonicalized
// the same way uploads canonicalize years.
func YearFilter(raw string) Filter {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return Unfiltered()
	}
	return Equals(spreadsheet.NormalizeYear(trimmed))
}

// DepartmentFilter parses a raw department query value with the same "all"
// convention as YearFilter.
func DepartmentFilter(raw string) Filter {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return Unfiltered()
	}
	return Equals(spreadsheet.NormalizeDepartment(trimmed))
}

// IsUnfiltered reports whether the filter matches every value.
func (f Filter) IsUnfiltered() bool {
	return !f.filtered
}

// Value returns the canonical constraint value, or "" when unfiltered.
func (f Filter) Value() string {
	return f.value
}

// Matches reports whether a stored value satisfies the filter.
func (f Filter) Matches(value string) bool {
	return !f.filtered || f.value == value
}
