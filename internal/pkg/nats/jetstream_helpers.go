package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/flexwork/internal/pkg/constants"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name       string
	Subjects   []string
	Retention  jetstream.RetentionPolicy
	Storage    jetstream.StorageType
	Replicas   int
	MaxAge     time.Duration
	MaxBytes   int64
	MaxMsgs    int64
	Discard    jetstream.DiscardPolicy
	Duplicates time.Duration
}

// ConsumerConfig describes a durable pull consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	MaxAckPending int
	// RetryDelays is how long a failed message waits before redelivery, indexed by
	// delivery attempt. The last entry repeats.
	RetryDelays []time.Duration
}

const defaultRetryDelay = 5 * time.Second

// RetryDelay returns the NAK delay for a message that failed on its delivered-th attempt
func (c ConsumerConfig) RetryDelay(delivered uint64) time.Duration {
	if len(c.RetryDelays) == 0 {
		return defaultRetryDelay
	}
	i := int(delivered) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(c.RetryDelays) {
		i = len(c.RetryDelays) - 1
	}
	return c.RetryDelays[i]
}

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder starts from a file-backed work-queue stream
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:       name,
			Retention:  jetstream.WorkQueuePolicy,
			Storage:    jetstream.FileStorage,
			Replicas:   1,
			MaxAge:     7 * 24 * time.Hour,
			MaxBytes:   100 * 1024 * 1024,
			MaxMsgs:    1000000,
			Discard:    jetstream.DiscardOld,
			Duplicates: 2 * time.Minute,
		},
	}
}

func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

func (b *StreamConfigBuilder) WithStorage(storage jetstream.StorageType) *StreamConfigBuilder {
	b.config.Storage = storage
	return b
}

func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

// Build returns the stream configuration
func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// ConsumerConfigBuilder helps build consumer configurations
type ConsumerConfigBuilder struct {
	config ConsumerConfig
}

// NewConsumerConfigBuilder starts from an explicit-ack consumer
func NewConsumerConfigBuilder(streamName, consumerName string) *ConsumerConfigBuilder {
	return &ConsumerConfigBuilder{
		config: ConsumerConfig{
			StreamName:    streamName,
			ConsumerName:  consumerName,
			DeliverPolicy: jetstream.DeliverAllPolicy,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    5,
			MaxAckPending: 1000,
		},
	}
}

func (b *ConsumerConfigBuilder) WithSubject(subject string) *ConsumerConfigBuilder {
	b.config.FilterSubject = subject
	return b
}

func (b *ConsumerConfigBuilder) WithAckWait(ackWait time.Duration) *ConsumerConfigBuilder {
	b.config.AckWait = ackWait
	return b
}

func (b *ConsumerConfigBuilder) WithMaxDeliver(maxDeliver int) *ConsumerConfigBuilder {
	b.config.MaxDeliver = maxDeliver
	return b
}

// WithRetryDelays sets the NAK delay schedule of failed messages
func (b *ConsumerConfigBuilder) WithRetryDelays(delays ...time.Duration) *ConsumerConfigBuilder {
	b.config.RetryDelays = delays
	return b
}

// Build returns the consumer configuration
func (b *ConsumerConfigBuilder) Build() ConsumerConfig {
	return b.config
}

// WorkspaceStreamConfig is the stream holding workspace jobs
func WorkspaceStreamConfig() StreamConfig {
	return NewStreamConfigBuilder(constants.StreamWorkspace).
		WithSubjects(constants.SubjectInvitationBatch).
		Build()
}

// InvitationConsumerConfig is the durable consumer of invitation batches
func InvitationConsumerConfig(maxDeliver int, ackWait time.Duration) ConsumerConfig {
	b := NewConsumerConfigBuilder(constants.StreamWorkspace, constants.ConsumerInvitationNotifier).
		WithSubject(constants.SubjectInvitationBatch).
		WithRetryDelays(5*time.Second, 15*time.Second, 30*time.Second, time.Minute)
	if maxDeliver > 0 {
		b = b.WithMaxDeliver(maxDeliver)
	}
	if ackWait > 0 {
		b = b.WithAckWait(ackWait)
	}
	return b.Build()
}
