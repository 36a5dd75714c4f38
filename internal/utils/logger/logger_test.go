package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"golang.org/x/exp/slog"
	"jsonapi/internal/app/client/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestNewWithWriter(t *testing.T) {
	ctx := context.Background()

	// Prod - только INFO и выше, если не включен debug
	var buf bytes.Buffer
	prodLogger := NewWithWriter(config.EnvProd, &buf, false)
	assert.False(t, prodLogger.Enabled(ctx, slog.LevelDebug))

	prodDebug := NewWithWriter(config.EnvProd, &buf, true)
	assert.True(t, prodDebug.Enabled(ctx, slog.LevelDebug))

	prodLogger.Error("unexpected status", slog.Int("status", 500), Err(errors.New("boom")))
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestPrettyHandler_WritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.EnvLocal, &buf, false)

	logger.With(slog.String("component", "test")).Info("hello", slog.Int("id", 7))

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"id": 7`)
}

func TestNewWithLevel(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	tests := []struct {
		level     string
		wantInfo  bool
		wantWarn  bool
		wantError bool
	}{
		{level: "", wantInfo: true, wantWarn: true, wantError: true},
		{level: "WARN", wantInfo: false, wantWarn: true, wantError: true},
		{level: "error", wantInfo: false, wantWarn: false, wantError: true},
		{level: "bogus", wantInfo: true, wantWarn: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			l := NewWithLevel(config.EnvProd, tt.level, &buf, false)
			assert.Equal(t, tt.wantInfo, l.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.wantWarn, l.Enabled(ctx, slog.LevelWarn))
			assert.Equal(t, tt.wantError, l.Enabled(ctx, slog.LevelError))
		})
	}

	// Уровень из конфигурации не действует на local
	local := NewWithLevel(config.EnvLocal, "error", &buf, false)
	assert.True(t, local.Enabled(ctx, slog.LevelDebug))
}
