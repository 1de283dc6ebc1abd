package infra

import (
	"context"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=mock_kafka.go -package=infra

// KafkaWriter is the subset of *kafka.Writer used by publishers.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
