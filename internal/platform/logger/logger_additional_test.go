package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/hoorayhoa/hoa-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	customLogger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "nil_logger_in_context_returns_default",
			ctx:      logger.WithLogger(context.Background(), nil),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Same(t, tt.expected, result)
		})
	}
}

func TestWithLogger_Scoping(t *testing.T) {
	parent := slog.New(slog.NewTextHandler(io.Discard, nil))
	child := parent.With("user_id", int64(7))

	outer := logger.WithLogger(context.Background(), parent)
	inner := logger.WithLogger(outer, child)

	assert.Same(t, parent, logger.FromContext(outer))
	assert.Same(t, child, logger.FromContext(inner))
}
