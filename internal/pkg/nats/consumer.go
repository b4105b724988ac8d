package nats

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/flexwork/internal/pkg/logger"
)

// ErrTerminal marks a message that must not be redelivered
var ErrTerminal = errors.New("terminal message error")

// Terminal wraps err so the consumer terminates the message instead of NAKing it
func Terminal(err error) error {
	return fmt.Errorf("%w: %v", ErrTerminal, err)
}

// MessageHandler processes one JetStream message. nil acks, Terminal terms, any other error
// naks with the consumer's retry delay.
type MessageHandler func(ctx context.Context, msg jetstream.Msg) error

// Consumer runs a handler over a durable JetStream consumer with bounded concurrency
type Consumer struct {
	consumer    jetstream.Consumer
	cfg         ConsumerConfig
	concurrency int

	mu         sync.Mutex
	consumeCtx jetstream.ConsumeContext
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewConsumer ensures the durable consumer exists and returns a runner for it
func NewConsumer(ctx context.Context, client *Client, cfg ConsumerConfig, concurrency int) (*Consumer, error) {
	consumer, err := client.EnsureConsumer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Consumer{consumer: consumer, cfg: cfg, concurrency: concurrency}, nil
}

// Start begins delivering messages to handler until Stop is called
func (c *Consumer) Start(handler MessageHandler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.consumeCtx != nil {
		return errors.New("consumer is already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sem := make(chan struct{}, c.concurrency)

	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		sem <- struct{}{}
		c.wg.Add(1)
		go func() {
			defer func() {
				<-sem
				c.wg.Done()
			}()
			c.dispatch(ctx, msg, handler)
		}()
	}, jetstream.PullMaxMessages(c.concurrency))
	if err != nil {
		cancel()
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.consumeCtx = consumeCtx
	c.cancel = cancel
	return nil
}

func (c *Consumer) dispatch(ctx context.Context, msg jetstream.Msg, handler MessageHandler) {
	err := handler(ctx, msg)
	switch {
	case err == nil:
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.String("subject", msg.Subject()), logger.Err(ackErr))
		}
	case errors.Is(err, ErrTerminal):
		logger.Error("Dropping message", logger.String("subject", msg.Subject()), logger.Err(err))
		if termErr := msg.Term(); termErr != nil {
			logger.Error("Failed to TERM message", logger.Err(termErr))
		}
	default:
		attempt := uint64(1)
		if md, mdErr := msg.Metadata(); mdErr == nil {
			attempt = md.NumDelivered
		}
		delay := c.cfg.RetryDelay(attempt)
		logger.Warn("Message processing failed, will be redelivered",
			logger.String("subject", msg.Subject()),
			logger.Int64("delivery", int64(attempt)),
			logger.Duration("delay", delay),
			logger.Err(err))
		if nakErr := msg.NakWithDelay(delay); nakErr != nil {
			logger.Error("Failed to NAK message", logger.Err(nakErr))
		}
	}
}

// Stop stops fetching and waits for in-flight handlers to finish
func (c *Consumer) Stop() {
	c.mu.Lock()
	consumeCtx, cancel := c.consumeCtx, c.cancel
	c.consumeCtx, c.cancel = nil, nil
	c.mu.Unlock()

	if consumeCtx == nil {
		return
	}
	consumeCtx.Stop()
	c.wg.Wait()
	cancel()
	logger.Info("Consumer stopped")
}
