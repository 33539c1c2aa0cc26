package services

import (
	"context"
	"delivery-fixture-generator/internal/domain"
	"delivery-fixture-generator/internal/platform/obs"
	"delivery-fixture-generator/internal/ports"
	"fmt"

	"go.uber.org/zap"
)

// Loader streams orders from a source into a sink, one blocking submission
// at a time. It is a best-effort bulk loader: a failed item is recorded in the
// report and the batch goes on.
type Loader struct {
	source ports.OrderSource
	sink   ports.OrderSink
	logger *zap.Logger
}

func NewLoader(source ports.OrderSource, sink ports.OrderSink, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, sink: sink, logger: logger}
}

// Load submits perAnchor orders for every anchor of the source. The returned
// error is only set when the batch could not be generated at all, or when ctx
// was cancelled between two submissions; the report is valid in both cases.
func (l *Loader) Load(ctx context.Context, perAnchor int) (_ *domain.Report, err error) {
	defer obs.Time(ctx, l.logger, "loader.Load")(&err)

	report := &domain.Report{}

	err = l.source.Distribute(perAnchor, func(order *domain.Order) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := l.sink.Submit(ctx, order)
		report.Add(res)

		if !res.OK() {
			l.logger.Warn("order submission failed",
				zap.Int("item", report.Total),
				zap.String("customer_id", res.Summary.CustomerID),
				zap.String("city", res.Summary.City),
				zap.String("remark", res.Summary.Remark),
				zap.String("reason", res.Reason))
			return nil
		}

		l.logger.Info("order created",
			zap.Int("created", report.Succeeded),
			zap.Int("item", report.Total),
			zap.String("order_id", res.OrderID))
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("load orders: %w", err)
	}

	return report, nil
}
