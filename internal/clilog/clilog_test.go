package clilog_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/yamlint/internal/clilog"
)

func TestLevelParsesKnownValues(t *testing.T) {
	t.Parallel()

	lvl, err := clilog.Level("warn")
	require.NoError(t, err)
	assert.Equal(t, "WARN", lvl.String())
}

func TestLevelRejectsUnknown(t *testing.T) {
	t.Parallel()

	_, err := clilog.Level("verbose")
	require.ErrorIs(t, err, clilog.ErrUnknownLogLevel)
}

func TestNewHandlerRejectsBadFormat(t *testing.T) {
	t.Parallel()

	_, err := clilog.NewHandler(io.Discard, "info", "xml")
	require.ErrorIs(t, err, clilog.ErrInvalidArgument)
}

func TestNewHandlerDefaultsToLogfmt(t *testing.T) {
	t.Parallel()

	h, err := clilog.NewHandler(io.Discard, "info", "")
	require.NoError(t, err)
	assert.NotNil(t, h)
}
