// Package bot wires the WhatsApp transport to the store services: the
// keyword router, the outbound message sink and the payment notifier.
package bot

import (
	"context"
	"fmt"

	"go.mau.fi/whatsmeow"
	waE2E "go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
)

// Sink delivers outbound text messages. The router only ever sends plain
// conversation messages.
type Sink interface {
	Send(ctx context.Context, to types.JID, text string) error
}

// WhatsmeowSink sends through a connected whatsmeow client.
type WhatsmeowSink struct {
	client *whatsmeow.Client
}

func NewWhatsmeowSink(client *whatsmeow.Client) *WhatsmeowSink {
	return &WhatsmeowSink{client: client}
}

func (s *WhatsmeowSink) Send(ctx context.Context, to types.JID, text string) error {
	msg := &waE2E.Message{Conversation: &text}
	if _, err := s.client.SendMessage(ctx, to, msg); err != nil {
		return fmt.Errorf("send message to %s: %w", to, err)
	}
	return nil
}
