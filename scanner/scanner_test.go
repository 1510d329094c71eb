package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/yamlint/scanner"
	"github.com/macropower/yamlint/token"
)

func kinds(toks token.Tokens) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Kind)
	}

	return out
}

func TestScanEmitsStreamBoundaries(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: 1\n"))
	require.Nil(t, res.Fatal)
	require.NotEmpty(t, res.Tokens)

	assert.Equal(t, token.StreamStart, res.Tokens[0].Kind)
	assert.Equal(t, token.StreamEnd, res.Tokens[len(res.Tokens)-1].Kind)
}

func TestScanBlockMapping(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: 1\nb: 2\n"))
	require.Nil(t, res.Fatal)

	ks := kinds(res.Tokens)
	assert.Contains(t, ks, token.BlockMappingStart)
	assert.Contains(t, ks, token.BlockEnd)
	assert.Contains(t, ks, token.Key)
	assert.Contains(t, ks, token.Value)
}

func TestScanBlockSequence(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("- a\n- b\n"))
	require.Nil(t, res.Fatal)

	ks := kinds(res.Tokens)
	assert.Contains(t, ks, token.BlockSequenceStart)
	assert.Contains(t, ks, token.BlockEntry)
}

func TestScanFlowCollections(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: {b: 1, c: 2}\n"))
	require.Nil(t, res.Fatal)

	ks := kinds(res.Tokens)
	assert.Contains(t, ks, token.FlowMappingStart)
	assert.Contains(t, ks, token.FlowMappingEnd)
	assert.Contains(t, ks, token.FlowEntry)
}

func TestScanComment(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: 1 # hello\n"))
	require.Nil(t, res.Fatal)

	found := false

	for _, tk := range res.Tokens {
		if tk.Kind == token.Comment {
			found = true

			assert.Equal(t, " hello", tk.Raw)
		}
	}

	assert.True(t, found)
}

func TestScanAnchorAndAlias(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: &x 1\nb: *x\n"))
	require.Nil(t, res.Fatal)

	var anchors, aliases []string

	for _, tk := range res.Tokens {
		switch tk.Kind {
		case token.Anchor:
			anchors = append(anchors, tk.Name)
		case token.Alias:
			aliases = append(aliases, tk.Name)
		}
	}

	assert.Equal(t, []string{"x"}, anchors)
	assert.Equal(t, []string{"x"}, aliases)
}

func TestScanTokensAreSortedByPosition(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: 1\nb:\n  c: 2\n"))
	require.Nil(t, res.Fatal)

	for i := 1; i < len(res.Tokens); i++ {
		prev, cur := res.Tokens[i-1].Start, res.Tokens[i].Start
		assert.False(t, cur.Less(prev), "token %d (%v) sorts before token %d (%v)", i, cur, i-1, prev)
	}
}

func TestScanProducesLines(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a: 1\nb: 2\n"))
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "a: 1", res.Lines[0].Raw)
}

func TestScanNestedMapping(t *testing.T) {
	t.Parallel()

	res := scanner.Scan([]byte("a:\n  b: 1\n  c: 2\n"))
	require.Nil(t, res.Fatal)

	count := 0
	for _, tk := range res.Tokens {
		if tk.Kind == token.BlockMappingStart {
			count++
		}
	}

	assert.Equal(t, 2, count)
}

