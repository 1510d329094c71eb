package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/yamlint/diag"
	"github.com/macropower/yamlint/render"
)

func TestParsableFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ds := []diag.Diagnostic{
		{Line: 3, Column: 5, Level: diag.Error, RuleID: "colons", Message: "too many spaces"},
	}

	render.Parsable(&buf, "foo.yaml", ds)
	assert.Equal(t, "foo.yaml:3:5: [error] too many spaces (colons)\n", buf.String())
}

func TestColoredSkipsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	render.Colored(&buf, "foo.yaml", nil, render.DefaultStyles())
	assert.Empty(t, buf.String())
}

func TestColoredIncludesMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ds := []diag.Diagnostic{
		{Line: 1, Column: 1, Level: diag.Warning, RuleID: "truthy", Message: "truthy value"},
	}

	render.Colored(&buf, "foo.yaml", ds, render.DefaultStyles())
	assert.Contains(t, buf.String(), "truthy value")
	assert.Contains(t, buf.String(), "truthy")
}

func TestSummaryFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	render.Summary(&buf, 2, 1)
	assert.Equal(t, "2 error(s), 1 warning(s)\n", buf.String())
}
