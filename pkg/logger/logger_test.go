package logger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development logger with explicit level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("production logger with default level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "")

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "loud")

		require.Error(t, err)
		assert.Nil(t, log)
		assert.Contains(t, err.Error(), "failed to parse log level")
	})
}

func TestFromContext(t *testing.T) {
	t.Run("returns the logger stored in the context", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), log)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, log, got)
	})

	t.Run("context without logger yields an error", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())

		require.ErrorIs(t, err, logger.ErrLoggerNotFound)
		assert.Nil(t, got)
	})
}

func TestLog(t *testing.T) {
	t.Run("prefers the context logger", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), log)

		assert.Same(t, log, logger.Log(ctx))
	})

	t.Run("falls back for a bare context", func(t *testing.T) {
		assert.NotNil(t, logger.Log(context.Background()))
	})
}

func TestRequestID(t *testing.T) {
	t.Run("round trip through the context", func(t *testing.T) {
		requestID := logger.GenerateRequestID()
		ctx := logger.NewRequestIDContext(context.Background(), requestID)

		got, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, requestID, got)
	})

	t.Run("empty id is replaced with a generated one", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		got, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		require.NoError(t, uuid.Validate(got))
	})

	t.Run("bare context has no request id", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}
