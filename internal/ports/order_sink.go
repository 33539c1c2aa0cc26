package ports

import (
	"context"
	"delivery-fixture-generator/internal/domain"
)

// Contract for handing a generated order to its destination.
// Implementations classify the outcome themselves and never return a Go error:
// a failed submission is a Failure result, not a reason to stop the batch.
type OrderSink interface {
	Submit(ctx context.Context, order *domain.Order) domain.Result
}
