package directive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/yamlint/directive"
	"github.com/macropower/yamlint/scanner"
)

func parse(t *testing.T, src string) directive.Set {
	t.Helper()

	res := scanner.Scan([]byte(src))
	require.Nil(t, res.Fatal)

	return directive.Parse(res.Tokens)
}

func TestDisableEnableToggle(t *testing.T) {
	t.Parallel()

	src := "a: 1  \n# yamllint disable rule:trailing-spaces\nb: 2  \n# yamllint enable\nc: 3  \n"
	s := parse(t, src)

	assert.False(t, s.Excludes("trailing-spaces", 1))
	assert.True(t, s.Excludes("trailing-spaces", 3))
	assert.False(t, s.Excludes("trailing-spaces", 5))
}

func TestDisableLineIsSingleLine(t *testing.T) {
	t.Parallel()

	src := "a: 1  # yamllint disable-line rule:trailing-spaces\nb: 2  \n"
	s := parse(t, src)

	assert.True(t, s.Excludes("trailing-spaces", 1))
	assert.False(t, s.Excludes("trailing-spaces", 2))
}

func TestDisableAllRules(t *testing.T) {
	t.Parallel()

	src := "# yamllint disable\na: 1  \n"
	s := parse(t, src)

	assert.True(t, s.Excludes("trailing-spaces", 2))
	assert.True(t, s.Excludes("colons", 2))
}

func TestDisableFileWide(t *testing.T) {
	t.Parallel()

	src := "# yamllint disable-file\na: 1  \n"
	s := parse(t, src)

	assert.True(t, s.Excludes("trailing-spaces", 2))
}

func TestNoDirectivesExcludesNothing(t *testing.T) {
	t.Parallel()

	s := parse(t, "a: 1\n")
	assert.False(t, s.Excludes("trailing-spaces", 1))
}
