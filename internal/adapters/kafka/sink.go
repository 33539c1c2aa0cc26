package kafka

import (
	"context"
	"delivery-fixture-generator/internal/adapters/orderapi"
	"delivery-fixture-generator/internal/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// orderCreatedEvent carries the generated order identity next to the same
// body the order API would receive.
type orderCreatedEvent struct {
	OrderID    string    `json:"orderId"`
	OccurredAt time.Time `json:"occurredAt"`
	orderapi.CreateOrderRequest
}

// Sink publishes one OrderCreated event per order, keyed by order id.
type Sink struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second
	prod, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("new kafka producer: %w", err)
	}
	return prod, nil
}

func NewSink(producer sarama.SyncProducer, topic string) *Sink {
	return &Sink{producer: producer, topic: topic}
}

func (s *Sink) Submit(_ context.Context, order *domain.Order) domain.Result {
	summary := domain.Summarize(order)

	payload, err := json.Marshal(orderCreatedEvent{
		OrderID:            order.ID,
		OccurredAt:         order.CreatedAt,
		CreateOrderRequest: orderapi.NewCreateOrderRequest(order),
	})
	if err != nil {
		return domain.Failure(fmt.Sprintf("encode event: %v", err), summary)
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(order.ID),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		return domain.Failure(fmt.Sprintf("publish to %s: %v", s.topic, err), summary)
	}

	return domain.Success(order.ID)
}

func (s *Sink) Close() error {
	return s.producer.Close()
}
