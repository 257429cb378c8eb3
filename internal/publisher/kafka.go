package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

// NewKafkaPublisher publishes paid orders to cfg.Topic, keyed by order number
// so every order lands on one partition.
func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *kafkaPublisher) PublishOrder(ctx context.Context, order entities.Order) error {
	m, err := EncodeOrder(order)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, m); err != nil {
		return fmt.Errorf("failed to publish order: %w", err)
	}
	p.logger.DebugContext(ctx, "order published", slog.String("order_number", order.OrderNumber))
	return nil
}

// EncodeOrder builds the message the order consumer expects.
func EncodeOrder(order entities.Order) (kafka.Message, error) {
	data, err := json.Marshal(handler.OrderEntityToJSON(order))
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal order: %w", err)
	}
	return kafka.Message{
		Key:   []byte(order.OrderNumber),
		Value: data,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}, nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
