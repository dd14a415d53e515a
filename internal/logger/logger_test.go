// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	l, err := New("debug")
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestWrapWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core)).With(String("component", "test"))

	l.Info("search finished", String("doi", "10.1/x"), Err(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "search finished", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test", fields["component"])
	assert.Equal(t, "10.1/x", fields["doi"])
	assert.Equal(t, "boom", fields["error"])
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("ignored")
	assert.NoError(t, l.With(Int("n", 1)).Sync())
}
