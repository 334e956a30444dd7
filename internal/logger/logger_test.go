package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *LoggerConfig
		wantDebug bool
	}{
		{"nil config", nil, false},
		{"info", &LoggerConfig{}, false},
		{"debug", &LoggerConfig{Debug: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogger(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)
			require.Equal(t, tt.wantDebug, l.Core().Enabled(zapcore.DebugLevel))
			require.True(t, l.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
