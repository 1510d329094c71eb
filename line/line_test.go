package line_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/yamlint/line"
)

func TestSplitCoverage(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"a: 1\n",
		"a: 1",
		"a: 1\r\n b: 2\r\n",
		"a: 1\n\n\nb: 2\n",
		"line with trailing spaces   \nok\n",
	}

	for _, src := range cases {
		lines := line.Split([]byte(src))

		var rebuilt strings.Builder
		for _, l := range lines {
			rebuilt.WriteString(l.Raw)
			rebuilt.Write(l.LineEnd.Bytes())
		}

		assert.Equal(t, src, rebuilt.String(), "round trip for %q", src)
	}
}

func TestSplitLineEndKinds(t *testing.T) {
	t.Parallel()

	lines := line.Split([]byte("unix\nwindows\r\nnone"))
	require.Len(t, lines, 3)

	assert.Equal(t, line.LF, lines[0].LineEnd)
	assert.Equal(t, "unix", lines[0].Raw)

	assert.Equal(t, line.CRLF, lines[1].LineEnd)
	assert.Equal(t, "windows", lines[1].Raw)

	assert.Equal(t, line.None, lines[2].LineEnd)
	assert.Equal(t, "none", lines[2].Raw)
}

func TestTrailingWS(t *testing.T) {
	t.Parallel()

	lines := line.Split([]byte("a:  \t \nb: 1\n"))
	require.Len(t, lines, 2)

	assert.True(t, lines[0].HasTrailingWS())
	assert.Equal(t, 0, lines[0].IndentWidth)
	assert.False(t, lines[1].HasTrailingWS())
}

func TestIndentWidth(t *testing.T) {
	t.Parallel()

	lines := line.Split([]byte("  key: value\n"))
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].IndentWidth)
}

func TestDisplayWidthCountsWideRunesAsTwo(t *testing.T) {
	t.Parallel()

	lines := line.Split([]byte("a:  \xe4\xbd\xa0\xe5\xa5\xbd\n"))
	require.Len(t, lines, 1)

	l := lines[0]
	assert.Equal(t, 6, l.RuneLen())
	assert.Equal(t, 8, l.DisplayWidth())
}

func TestDisplayWidthMatchesRuneLenForASCII(t *testing.T) {
	t.Parallel()

	lines := line.Split([]byte("a: value\n"))
	require.Len(t, lines, 1)

	l := lines[0]
	assert.Equal(t, l.RuneLen(), l.DisplayWidth())
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	lines := line.Split([]byte("\n   \nx\n"))
	require.Len(t, lines, 3)
	assert.True(t, lines[0].IsEmpty())
	assert.True(t, lines[1].IsEmpty())
	assert.False(t, lines[2].IsEmpty())
}
