package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"order-api/models"
)

// IOrderEventPublisher announces committed order changes.
type IOrderEventPublisher interface {
	Publish(ctx context.Context, event models.OrderEvent) error
}

// KafkaOrderPublisher pushes order events to a Kafka topic keyed by order id,
// so every change of one order lands on the same partition.
type KafkaOrderPublisher struct {
	kafka IKafkaService
	topic string
}

func NewKafkaOrderPublisher(kafka IKafkaService, topic string) IOrderEventPublisher {
	return &KafkaOrderPublisher{kafka: kafka, topic: topic}
}

func (p *KafkaOrderPublisher) Publish(_ context.Context, event models.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}
	key := []byte(strconv.FormatUint(uint64(event.OrderID), 10))
	return p.kafka.PushMessage(p.topic, key, payload)
}

// LogOrderPublisher only logs events. Used when Kafka is disabled.
type LogOrderPublisher struct {
	log logrus.FieldLogger
}

func NewLogOrderPublisher(log logrus.FieldLogger) IOrderEventPublisher {
	return &LogOrderPublisher{log: log}
}

func (p *LogOrderPublisher) Publish(_ context.Context, event models.OrderEvent) error {
	p.log.WithFields(logrus.Fields{
		"event_id": event.EventID,
		"type":     event.Type,
		"order_id": event.OrderID,
	}).Debug("order event (kafka disabled)")
	return nil
}
