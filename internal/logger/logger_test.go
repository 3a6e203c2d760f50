package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, LevelFromString("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, LevelFromString(" warning "))
	assert.Equal(t, zapcore.ErrorLevel, LevelFromString("error"))
	assert.Equal(t, zapcore.InfoLevel, LevelFromString("bogus"))
	assert.Equal(t, zapcore.InfoLevel, LevelFromString(""))
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "warn")
	assert.Equal(t, zapcore.WarnLevel, LevelFromEnv())
}

func TestNewWithWriterEncodesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zapcore.InfoLevel)
	log.Debug("dropped")
	log.Info("solved", zap.Int("problems", 3))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "solved", entry["msg"])
	assert.EqualValues(t, 3, entry["problems"])
	assert.Contains(t, entry, "ts")
}
