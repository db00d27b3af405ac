//go:build !integration

package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_LevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"not-a-level", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestInit_StampsServiceName(t *testing.T) {
	Init("info", false)

	var buf bytes.Buffer
	log := Logger().Output(&buf)
	log.Info().Msg("intake started")

	assert.Contains(t, buf.String(), `"service":"deer-order-intake"`)
	assert.Contains(t, buf.String(), "intake started")
}

func TestInit_PrettyOutput(t *testing.T) {
	Init("info", true)
	require.NotNil(t, Logger())
}

func TestWithContext(t *testing.T) {
	Init("info", false)

	var buf bytes.Buffer
	log := WithContext(map[string]interface{}{
		"order_id": "abc123",
		"staff":    "frontdesk",
	}).Output(&buf)
	log.Info().Msg("order edited")

	out := buf.String()
	assert.Contains(t, out, `"order_id":"abc123"`)
	assert.Contains(t, out, `"staff":"frontdesk"`)
}

func TestWithContext_EmptyFields(t *testing.T) {
	Init("info", false)
	log := WithContext(nil)
	assert.NotNil(t, log)
}
