package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		skipped zapcore.Level
	}{
		{level: "debug", enabled: zapcore.DebugLevel, skipped: zapcore.DebugLevel - 1},
		{level: "info", enabled: zapcore.InfoLevel, skipped: zapcore.DebugLevel},
		{level: "warn", enabled: zapcore.WarnLevel, skipped: zapcore.InfoLevel},
		{level: "error", enabled: zapcore.ErrorLevel, skipped: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level)
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.skipped))
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("chatty")
	assert.Error(t, err)
}
