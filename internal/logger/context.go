package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	traceIDKey ctxKey = "trace_id"
	chatJIDKey ctxKey = "chat_jid"
)

// WithMessage tags the context with a trace id and the chat JID of the
// inbound message so every log line from that handler carries both.
func WithMessage(ctx context.Context, traceID, chatJID string) context.Context {
	ctx = context.WithValue(ctx, traceIDKey, traceID)
	return context.WithValue(ctx, chatJIDKey, chatJID)
}

func TraceIDFrom(ctx context.Context) string {
	if v := ctx.Value(traceIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func ChatJIDFrom(ctx context.Context) string {
	if v := ctx.Value(chatJIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with trace_id and chat automatically added.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if id := TraceIDFrom(ctx); id != "" {
		l = l.With(zap.String("trace_id", id))
	}
	if jid := ChatJIDFrom(ctx); jid != "" {
		l = l.With(zap.String("chat", jid))
	}
	return l
}
