package logging

import (
	"context"
	"testing"

	l "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerFunc(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFunc(zap.New(core))

	tests := []struct {
		level l.Level
		want  zapcore.Level
	}{
		{level: l.LevelDebug, want: zapcore.DebugLevel},
		{level: l.LevelInfo, want: zapcore.InfoLevel},
		{level: l.LevelWarn, want: zapcore.WarnLevel},
		{level: l.LevelError, want: zapcore.ErrorLevel},
		{level: l.Level(42), want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		logger.Log(context.Background(), tt.level, "finished call", "grpc.method", "GetOperation")
	}

	entries := logs.All()
	require.Len(t, entries, len(tests))
	for i, tt := range tests {
		require.Equal(t, tt.want, entries[i].Level)
		require.Equal(t, "GetOperation", entries[i].ContextMap()["grpc.method"])
	}
}
