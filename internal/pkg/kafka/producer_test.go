package kafka

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestPublish_MarshalError(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"}, nil)
	defer p.Close()

	err := p.Publish(context.Background(), "ride.accepted", "k", make(chan int))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}

func TestNewProducer_Config(t *testing.T) {
	p := NewProducer([]string{"k1:9092", "k2:9092"}, nil)
	defer p.Close()

	assert.True(t, p.writer.Async)
	assert.NotNil(t, p.writer.Addr)
	assert.IsType(t, &kafka.Hash{}, p.writer.Balancer)
}
