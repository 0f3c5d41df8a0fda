package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/campusride/internal/pkg/logger"
)

// Producer publishes messages to an nsqd instance
type Producer struct {
	producer *nsq.Producer
	done     chan *nsq.ProducerTransaction
}

// zapOutput adapts the global logger to the nsq logger interface
type zapOutput struct{}

func (zapOutput) Output(_ int, s string) error {
	logger.Debug("nsq", logger.String("message", s))
	return nil
}

// NewProducer creates a producer and pings nsqd
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(zapOutput{}, nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	p := &Producer{producer: producer, done: make(chan *nsq.ProducerTransaction, 64)}
	go p.drain()
	return p, nil
}

func (p *Producer) drain() {
	for trans := range p.done {
		if trans.Error != nil {
			topic, _ := trans.Args[0].(string)
			logger.Warn("Failed to publish NSQ message",
				logger.String("topic", topic),
				logger.Err(trans.Error))
		}
	}
}

// Publish sends a message and waits for nsqd to acknowledge it
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishAsync queues a message without waiting; failures are logged
func (p *Producer) PublishAsync(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := p.producer.PublishAsync(topic, body, p.done, topic); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Stop flushes in-flight messages and disconnects
func (p *Producer) Stop() {
	p.producer.Stop()
	close(p.done)
}
