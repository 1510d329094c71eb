package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/directive"
	"github.com/macropower/yamlint/merge"
)

func TestMergeDedupesAndSorts(t *testing.T) {
	t.Parallel()

	raw := []diag.Diagnostic{
		{Line: 2, Column: 1, RuleID: "colons", Message: "x"},
		{Line: 1, Column: 5, RuleID: "trailing-spaces", Message: "y"},
		{Line: 2, Column: 1, RuleID: "colons", Message: "x"},
	}

	out := merge.Merge(raw, directive.Set{})
	assert.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Line)
	assert.Equal(t, 2, out[1].Line)
}

func TestMergeRespectsDirectives(t *testing.T) {
	t.Parallel()

	raw := []diag.Diagnostic{
		{Line: 3, Column: 1, RuleID: "colons", Message: "x"},
	}

	dirs := directive.Set{FileWide: true}

	out := merge.Merge(raw, dirs)
	assert.Empty(t, out)
}
