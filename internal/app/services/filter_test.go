package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYearFilterAllSentinel(t *testing.T) {
	for _, raw := range []string{"", "all", "ALL", " All ", "  "} {
		f := YearFilter(raw)
		require.True(t, f.IsUnfiltered(), "raw %q", raw)
		require.Empty(t, f.Value())
		require.True(t, f.Matches("2025"))
		require.True(t, f.Matches(""))
	}
}

func TestYearFilterCanonicalizes(t *testing.T) {
	f := YearFilter(" Class of 2025 ")
	require.False(t, f.IsUnfiltered())
	require.Equal(t, "2025", f.Value())
	require.True(t, f.Matches("2025"))
	require.False(t, f.Matches("2024"))
}

func TestDepartmentFilterCanonicalizes(t *testing.T) {
	f := DepartmentFilter(" cse ")
	require.False(t, f.IsUnfiltered())
	require.Equal(t, "CSE", f.Value())
	require.True(t, f.Matches("CSE"))
	require.False(t, f.Matches("ECE"))

	require.True(t, DepartmentFilter("all").IsUnfiltered())
}

func TestFilterZeroValueIsUnfiltered(t *testing.T) {
	var f Filter
	require.True(t, f.IsUnfiltered())
	require.True(t, f.Matches("anything"))

	require.False(t, Equals("CSE").IsUnfiltered())
	require.True(t, Unfiltered().IsUnfiltered())
}
