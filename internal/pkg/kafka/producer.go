package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer writes JSON messages to Kafka. The topic is chosen per message.
type Producer struct {
	writer  *kafka.Writer
	timeout time.Duration
}

// NewProducer creates an async writer over brokers. Delivery errors are
// reported through onError.
func NewProducer(brokers []string, onError func(topic string, err error)) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil && onError != nil {
				for _, m := range messages {
					onError(m.Topic, err)
				}
			}
		},
	}
	return &Producer{writer: w, timeout: 2 * time.Second}
}

// Publish enqueues message on topic keyed by key. Messages sharing a key land
// on the same partition, which keeps one ride's events in order.
func (p *Producer) Publish(ctx context.Context, topic, key string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{Topic: topic, Key: []byte(key), Value: body}); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close flushes pending messages
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
