package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Amitjang/XAlISS-SERVER/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		lvl      string
		format   string
		wantErr  string
		expected zapcore.Level
	}{
		{name: "info console", lvl: "info", expected: zapcore.InfoLevel},
		{name: "error console", lvl: "error", format: "console", expected: zapcore.ErrorLevel},
		{name: "debug json", lvl: "debug", format: "json", expected: zapcore.DebugLevel},
		{name: "warn json", lvl: "warn", format: "json", expected: zapcore.WarnLevel},
		{name: "unknown level", lvl: "verbose", wantErr: "unsupported log lvl: verbose"},
		{name: "unknown format", lvl: "info", format: "xml", wantErr: "unsupported log format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl, LogFormat: tt.format})

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expected))
			assert.False(t, zap.L().Core().Enabled(tt.expected-1))
		})
	}
}
