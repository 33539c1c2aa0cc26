package services

import (
	"delivery-fixture-generator/internal/domain"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var ErrWindowOrder = errors.New("delivery window starts before pickup window ends")

// WindowSampler produces time windows relative to a reference instant.
// Jitter is drawn in whole multiples of the granularity.
type WindowSampler struct {
	rng         *rand.Rand
	granularity time.Duration
}

func NewWindowSampler(rng *rand.Rand, granularity time.Duration) *WindowSampler {
	if granularity <= 0 {
		granularity = time.Minute
	}
	return &WindowSampler{rng: rng, granularity: granularity}
}

// Window returns [t0+jitter, t0+jitter+duration) with jitter uniform in [0, bound].
func (w *WindowSampler) Window(t0 time.Time, bound, duration time.Duration) (domain.TimeWindow, error) {
	if bound < 0 {
		return domain.TimeWindow{}, fmt.Errorf("sample window: negative jitter bound %v", bound)
	}
	if duration <= 0 {
		return domain.TimeWindow{}, fmt.Errorf("sample window: duration %v must be positive", duration)
	}

	steps := int64(bound / w.granularity)
	jitter := time.Duration(w.rng.Int64N(steps+1)) * w.granularity

	from := t0.Add(jitter)
	return domain.TimeWindow{From: from, To: from.Add(duration)}, nil
}

// StagePlan describes a two-stage delivery: a pickup window followed by a
// delivery window whose reference instant is the pickup end plus an offset.
type StagePlan struct {
	PickupJitter     time.Duration
	PickupDuration   time.Duration
	DeliveryOffset   time.Duration
	DeliveryJitter   time.Duration
	DeliveryDuration time.Duration
}

// Stages returns the pickup and delivery windows for one order.
func (w *WindowSampler) Stages(t0 time.Time, p StagePlan) (pickup, delivery domain.TimeWindow, err error) {
	if p.DeliveryOffset < 0 {
		return pickup, delivery, fmt.Errorf("sample stages: negative delivery offset %v", p.DeliveryOffset)
	}

	pickup, err = w.Window(t0, p.PickupJitter, p.PickupDuration)
	if err != nil {
		return pickup, delivery, fmt.Errorf("sample stages: pickup: %w", err)
	}

	delivery, err = w.Window(pickup.To.Add(p.DeliveryOffset), p.DeliveryJitter, p.DeliveryDuration)
	if err != nil {
		return pickup, delivery, fmt.Errorf("sample stages: delivery: %w", err)
	}

	if delivery.From.Before(pickup.To) {
		return pickup, delivery, ErrWindowOrder
	}

	return pickup, delivery, nil
}
