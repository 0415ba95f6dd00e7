package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/cristianadrielbraun/qrforge/internal/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	prod, err := logger.New(true, "")
	require.NoError(t, err)
	assert.True(t, prod.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))

	dev, err := logger.New(false, "")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	warn, err := logger.New(true, "warn")
	require.NoError(t, err)
	assert.False(t, warn.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, warn.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.New(true, "loud")
	assert.Error(t, err)
}
