package logging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"griddemo/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"trace", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "warn", Format: "json"}, false)
	require.NoError(t, err)
	assert.False(t, l.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Zap().Core().Enabled(zapcore.WarnLevel))

	l, err = New(config.LoggingConfig{Level: "warn", Format: "console"}, true)
	require.NoError(t, err)
	assert.True(t, l.Zap().Core().Enabled(zapcore.DebugLevel))

	_, err = New(config.LoggingConfig{Level: "loud"}, false)
	assert.Error(t, err)
	_, err = New(config.LoggingConfig{Level: "info", Format: "xml"}, false)
	assert.Error(t, err)
}

func TestFor_CategoryAndRunID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core, config.LoggingConfig{})

	_, err := uuid.Parse(l.RunID())
	require.NoError(t, err)

	l.For(CategoryFill).Info("filled")
	l.For(CategoryRender).Debug("printed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "fill", entries[0].LoggerName)
	assert.Equal(t, "render", entries[1].LoggerName)
	for _, e := range entries {
		assert.Equal(t, l.RunID(), e.ContextMap()["run_id"])
	}

	assert.Same(t, l.For(CategoryFill), l.For(CategoryFill))
}

func TestFor_DisabledCategory(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core, config.LoggingConfig{
		DebugMode:  true,
		Categories: map[string]bool{"input": false},
	})

	l.For(CategoryInput).Info("dropped")
	l.For(CategoryLifecycle).Info("kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.For(CategoryBoot).Error("nothing")
	assert.NoError(t, l.Sync())
}
