package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
)

// Producer publishes JSON messages to JetStream
type Producer struct {
	js jetstream.JetStream
}

// NewProducer creates a producer on client's JetStream context
func NewProducer(client *Client) *Producer {
	return &Producer{js: client.JetStream()}
}

// Publish marshals message and publishes it, waiting for the stream ack. A non-empty
// msgID lets the stream drop duplicates inside its duplicate window.
func (p *Producer) Publish(ctx context.Context, subject string, message interface{}, msgID string) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	var opts []jetstream.PublishOpt
	if msgID != "" {
		opts = append(opts, jetstream.WithMsgID(msgID))
	}

	if _, err := p.js.Publish(ctx, subject, data, opts...); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", subject, err)
	}
	return nil
}
