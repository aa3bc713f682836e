package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "production", debug: false, wantDebug: false},
		{name: "debug", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(Options{Debug: tt.debug, AppName: "concatjson", AppVersion: "1.0.0"})
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
			assert.Equal(t, tt.wantDebug, logger.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	require.NoError(t, Setup(false, "concatjson", "1.0.0"))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
	assert.Same(t, Logger, zap.L())

	require.NoError(t, Setup(true, "concatjson", "1.0.0"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
