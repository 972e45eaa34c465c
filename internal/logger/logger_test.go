package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: " INFO ", want: zapcore.InfoLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "bogus", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNew_FileOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("cart saved", zap.String("owner", "o1"))
	require.NoError(t, log.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "cart saved", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "o1", entry["owner"])
}

func TestNew_BadOutput(t *testing.T) {
	_, err := New(Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "app.log")})
	require.Error(t, err)
}
