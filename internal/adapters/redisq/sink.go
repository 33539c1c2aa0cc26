package redisq

import (
	"context"
	"delivery-fixture-generator/internal/adapters/orderapi"
	"delivery-fixture-generator/internal/domain"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type queuedOrder struct {
	OrderID string `json:"orderId"`
	orderapi.CreateOrderRequest
}

// Sink appends creation payloads to a Redis list for a queue-based loader
// to drain later.
type Sink struct {
	rdb redis.Cmdable
	key string
}

func NewSink(rdb redis.Cmdable, key string) *Sink {
	return &Sink{rdb: rdb, key: key}
}

func (s *Sink) Submit(ctx context.Context, order *domain.Order) domain.Result {
	summary := domain.Summarize(order)

	payload, err := json.Marshal(queuedOrder{
		OrderID:            order.ID,
		CreateOrderRequest: orderapi.NewCreateOrderRequest(order),
	})
	if err != nil {
		return domain.Failure(fmt.Sprintf("encode payload: %v", err), summary)
	}

	if err := s.rdb.RPush(ctx, s.key, payload).Err(); err != nil {
		return domain.Failure(fmt.Sprintf("rpush %s: %v", s.key, err), summary)
	}

	return domain.Success(order.ID)
}
