package rulectx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/yamlint/rulectx"
	"github.com/macropower/yamlint/scanner"
)

func TestBuildTracksAnchorDeclarationsAndUses(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: &x 1\nb: *x\nc: *x\n"))
	tr := rulectx.Build(res.Tokens)

	require.Contains(t, tr.Anchors, "x")
	assert.Len(t, tr.Anchors["x"].Declarations, 1)
	assert.Equal(t, 2, tr.Anchors["x"].Uses)
	assert.Empty(t, tr.UndeclaredAliases)
}

func TestBuildFlagsUndeclaredAlias(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: *missing\n"))
	tr := rulectx.Build(res.Tokens)

	require.Len(t, tr.UndeclaredAliases, 1)
	assert.Equal(t, "missing", tr.UndeclaredAliases[0].Name)
}

func TestBuildTracksFlowDepth(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: {b: [1, 2]}\n"))
	tr := rulectx.Build(res.Tokens)

	maxDepth := 0

	for i := range res.Tokens {
		if tr.FlowDepth[i] > maxDepth {
			maxDepth = tr.FlowDepth[i]
		}
	}

	assert.Equal(t, 2, maxDepth)

	for _, d := range tr.FlowDepth {
		assert.GreaterOrEqual(t, d, 0)
	}
}

func TestBuildTracksKeyPath(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a:\n  b: 1\n"))
	tr := rulectx.Build(res.Tokens)

	var deepest []string

	for _, p := range tr.Path {
		if len(p) > len(deepest) {
			deepest = p
		}
	}

	assert.Equal(t, []string{"a", "b"}, deepest)
}

func TestAnchorFirstDeclaration(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: &x 1\nb: &x 2\n"))
	tr := rulectx.Build(res.Tokens)

	require.Contains(t, tr.Anchors, "x")
	assert.Len(t, tr.Anchors["x"].Declarations, 2)
	assert.Equal(t, tr.Anchors["x"].Declarations[0], tr.Anchors["x"].FirstDeclaration())
}

func TestAnchorFirstDeclarationZeroValue(t *testing.T) {
	t.Parallel()

	var a rulectx.Anchor

	assert.Zero(t, a.FirstDeclaration())
}
