package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/yamlint/diag"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", diag.Error.String())
	assert.Equal(t, "warning", diag.Warning.String())
	assert.Equal(t, "info", diag.Info.String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want diag.Level
		ok   bool
	}{
		{"", diag.Error, true},
		{"error", diag.Error, true},
		{"warning", diag.Warning, true},
		{"info", diag.Info, true},
		{"critical", diag.Error, false},
	}

	for _, tc := range cases {
		got, ok := diag.ParseLevel(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFixable(t *testing.T) {
	t.Parallel()

	assert.False(t, diag.Diagnostic{}.Fixable())
	assert.True(t, diag.Diagnostic{Fix: []diag.Edit{{}}}.Fixable())
}

func TestSortOrdersByLineColumnRule(t *testing.T) {
	t.Parallel()

	ds := []diag.Diagnostic{
		{Line: 2, Column: 1, RuleID: "b"},
		{Line: 1, Column: 5, RuleID: "a"},
		{Line: 1, Column: 1, RuleID: "z"},
		{Line: 1, Column: 1, RuleID: "a"},
	}

	diag.Sort(ds)

	want := []string{"a", "z", "a", "b"}

	got := make([]string, 0, len(ds))
	for _, d := range ds {
		got = append(got, d.RuleID)
	}

	assert.Equal(t, want, got)
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	t.Parallel()

	ds := []diag.Diagnostic{
		{Line: 1, Column: 1, RuleID: "x", Message: "first"},
		{Line: 1, Column: 1, RuleID: "x", Message: "second"},
	}

	diag.Sort(ds)

	assert.Equal(t, "first", ds[0].Message)
	assert.Equal(t, "second", ds[1].Message)
}
