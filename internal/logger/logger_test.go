package logger

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	// Force nil to test lazy initialization
	log = nil
	os.Setenv("APP_ENV", "test")

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()

	tagged := WithMessage(ctx, "trace-123", "628123@s.whatsapp.net")
	assert.Equal(t, "trace-123", TraceIDFrom(tagged))
	assert.Equal(t, "628123@s.whatsapp.net", ChatJIDFrom(tagged))

	assert.Equal(t, "", TraceIDFrom(ctx))
	assert.Equal(t, "", ChatJIDFrom(ctx))
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	obsLogger := zap.New(core)

	originalLog := log
	log = obsLogger
	defer func() { log = originalLog }()

	t.Run("WithMessageTags", func(t *testing.T) {
		ctx := WithMessage(context.Background(), "trace-abc", "62811@s.whatsapp.net")

		FromCtx(ctx).Info("inbound handled")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		assert.Equal(t, "trace-abc", fields["trace_id"])
		assert.Equal(t, "62811@s.whatsapp.net", fields["chat"])
	})

	t.Run("WithoutTags", func(t *testing.T) {
		FromCtx(context.Background()).Info("plain")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		_, hasTrace := fields["trace_id"]
		_, hasChat := fields["chat"]
		assert.False(t, hasTrace)
		assert.False(t, hasChat)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}
