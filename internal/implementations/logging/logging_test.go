package logging

import (
	"accounts/internal/core/domain/account"
	"accounts/internal/core/domain/logging"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesStructuredEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := newZapLogger(zap.New(core))
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "New account has been created.", logging.Entry("accountId", account.ID("valid_id")))
	logger.Warning(ctx, "warning")
	logger.Error(ctx, "Could not sign up.", logging.Err(errors.New("connection refused")))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "New account has been created.", entries[1].Message)
	assert.EqualValues(t, "valid_id", entries[1].ContextMap()["accountId"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "connection refused", entries[3].ContextMap()["err"])
}

func TestZapLoggerMasksPasswords(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := newZapLogger(zap.New(core))

	logger.Info(context.Background(), "input", logging.Entry("password", account.RawPassword("valid_password")))

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "***", logs.All()[0].ContextMap()["password"])
}

func TestNewZapLoggerLevels(t *testing.T) {
	production := NewZapLogger(false)
	development := NewZapLogger(true)

	assert.False(t, production.logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, production.logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, development.logger.Core().Enabled(zapcore.DebugLevel))
}
