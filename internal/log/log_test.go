package log

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_Quiet(t *testing.T) {
	Setup(false, true)
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
}

func TestSetup_Verbose(t *testing.T) {
	Setup(true, false)
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestSetup_Default(t *testing.T) {
	Setup(false, false)
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}
