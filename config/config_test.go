package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/yamlint/config"
	"github.com/macropower/yamlint/diag"
)

func TestDefaultEnablesCoreRules(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.True(t, cfg.Rules["trailing-spaces"].Enabled)
	assert.False(t, cfg.Rules["document-end"].Enabled)
}

func TestLoadOverridesLevel(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load([]byte("rules:\n  line-length:\n    level: warning\n    max: 120\n"))
	require.NoError(t, err)

	s := cfg.Rules["line-length"]
	assert.True(t, s.Enabled)
	assert.Equal(t, diag.Warning, s.Level)
	assert.Equal(t, 120, s.Options.Int("max", 80))
}

func TestLoadDisableShorthand(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load([]byte("rules:\n  colons: disable\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Rules["colons"].Enabled)
}

func TestLoadUnknownRuleErrors(t *testing.T) {
	t.Parallel()

	_, err := config.Load([]byte("rules:\n  not-a-rule: disable\n"))
	require.ErrorIs(t, err, config.ErrUnknownRule)
}

func TestLoadExtendsRelaxed(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load([]byte("extends: relaxed\n"))
	require.NoError(t, err)
	assert.Equal(t, diag.Warning, cfg.Rules["line-length"].Level)
}

func TestLoadUnknownExtendsErrors(t *testing.T) {
	t.Parallel()

	_, err := config.Load([]byte("extends: nonexistent\n"))
	require.ErrorIs(t, err, config.ErrUnknownExtends)
}

func TestLoadPerRuleIgnore(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load([]byte("rules:\n  line-length:\n    ignore:\n      - vendor/**\n"))
	require.NoError(t, err)

	s := cfg.Rules["line-length"]
	assert.True(t, s.IgnoresPath("vendor/foo.yaml"))
	assert.False(t, s.IgnoresPath("app/foo.yaml"))
}

func TestIsLintableRespectsIgnore(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load([]byte("ignore:\n  - vendor/**\n"))
	require.NoError(t, err)

	assert.False(t, cfg.IsLintable("vendor/foo.yaml"))
	assert.True(t, cfg.IsLintable("app/foo.yaml"))
}
