package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/campusride/internal/pkg/kafka"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/metrics"
	"github.com/piresc/campusride/internal/pkg/models"
	natspkg "github.com/piresc/campusride/internal/pkg/nats"
	nsqpkg "github.com/piresc/campusride/internal/pkg/nsq"
	"github.com/piresc/campusride/services/rides"
)

// Notifier drivers
const (
	DriverNATS  = "nats"
	DriverNSQ   = "nsq"
	DriverKafka = "kafka"
	DriverNone  = "none"
)

// NATSRideGW publishes ride events on NATS subjects
type NATSRideGW struct {
	natsClient *natspkg.Client
}

// NewNATSRideGW creates a NATS backed ride gateway. The client is owned by
// the caller.
func NewNATSRideGW(client *natspkg.Client) *NATSRideGW {
	return &NATSRideGW{natsClient: client}
}

// PublishRideEvent publishes event on subject
func (g *NATSRideGW) PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error {
	return g.natsClient.PublishJSON(subject, event)
}

// Close is a no-op; the NATS connection is shared
func (g *NATSRideGW) Close() error { return nil }

// NSQRideGW publishes ride events as NSQ topics
type NSQRideGW struct {
	producer *nsqpkg.Producer
}

// NewNSQRideGW creates an NSQ backed ride gateway
func NewNSQRideGW(producer *nsqpkg.Producer) *NSQRideGW {
	return &NSQRideGW{producer: producer}
}

// PublishRideEvent queues event on topic subject
func (g *NSQRideGW) PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error {
	return g.producer.PublishAsync(subject, event)
}

// Close flushes and stops the producer
func (g *NSQRideGW) Close() error {
	g.producer.Stop()
	return nil
}

// KafkaRideGW publishes ride events as Kafka topics, keyed so one ride's
// events stay on one partition.
type KafkaRideGW struct {
	producer *kafka.Producer
}

// NewKafkaRideGW creates a Kafka backed ride gateway
func NewKafkaRideGW(producer *kafka.Producer) *KafkaRideGW {
	return &KafkaRideGW{producer: producer}
}

// PublishRideEvent enqueues event on topic subject
func (g *KafkaRideGW) PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error {
	return g.producer.Publish(ctx, subject, eventKey(event), event)
}

// Close flushes the writer
func (g *KafkaRideGW) Close() error {
	return g.producer.Close()
}

func eventKey(event models.RideEvent) string {
	switch {
	case event.RideID != nil:
		return event.RideID.String()
	case event.RequestID != nil:
		return event.RequestID.String()
	}
	return event.RiderID.String()
}

// NoopRideGW drops every event
type NoopRideGW struct{}

// PublishRideEvent does nothing
func (NoopRideGW) PublishRideEvent(context.Context, string, models.RideEvent) error { return nil }

// Close does nothing
func (NoopRideGW) Close() error { return nil }

// NewRideGW builds the gateway for the configured notifier driver
func NewRideGW(cfg *models.Config, natsClient *natspkg.Client) (rides.RideGW, error) {
	switch cfg.Notifier.Driver {
	case DriverNATS, "":
		if natsClient == nil {
			return nil, fmt.Errorf("nats notifier requires a NATS connection")
		}
		return NewNATSRideGW(natsClient), nil
	case DriverNSQ:
		producer, err := nsqpkg.NewProducer(cfg.NSQ.NSQDAddress)
		if err != nil {
			return nil, err
		}
		return NewNSQRideGW(producer), nil
	case DriverKafka:
		producer := kafka.NewProducer(cfg.Kafka.Brokers, func(topic string, err error) {
			metrics.EventsPublishFailed.WithLabelValues(topic).Inc()
			logger.Warn("Kafka delivery failed",
				logger.String("topic", topic),
				logger.Err(err))
		})
		return NewKafkaRideGW(producer), nil
	case DriverNone:
		return NoopRideGW{}, nil
	}
	return nil, fmt.Errorf("unknown notifier driver %q", cfg.Notifier.Driver)
}
