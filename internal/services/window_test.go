package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowJitterNeverExceedsBound(t *testing.T) {
	w := NewWindowSampler(testRand(), time.Minute)
	const bound = 480 * time.Minute

	var maxJitter time.Duration
	for i := 0; i < 10000; i++ {
		win, err := w.Window(testReference, bound, 2*time.Hour)
		require.NoError(t, err)

		jitter := win.From.Sub(testReference)
		require.GreaterOrEqual(t, jitter, time.Duration(0))
		require.LessOrEqual(t, jitter, bound)
		require.True(t, win.To.After(win.From))
		require.Equal(t, 2*time.Hour, win.To.Sub(win.From))
		require.Zero(t, jitter%time.Minute)

		maxJitter = max(maxJitter, jitter)
	}

	// 10k draws over 481 slots should get close to the upper end
	assert.Greater(t, maxJitter, 470*time.Minute)
}

func TestWindowZeroBoundStartsAtReference(t *testing.T) {
	w := NewWindowSampler(testRand(), time.Minute)

	win, err := w.Window(testReference, 0, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, testReference, win.From)
}

func TestWindowRejectsBadInput(t *testing.T) {
	w := NewWindowSampler(testRand(), time.Minute)

	_, err := w.Window(testReference, -time.Minute, time.Hour)
	assert.Error(t, err)

	_, err = w.Window(testReference, time.Hour, 0)
	assert.Error(t, err)
}

func TestStagesKeepPickupBeforeDelivery(t *testing.T) {
	w := NewWindowSampler(testRand(), time.Minute)
	plan := StagePlan{
		PickupJitter:     8 * time.Hour,
		PickupDuration:   time.Hour,
		DeliveryOffset:   time.Hour,
		DeliveryJitter:   3 * time.Hour,
		DeliveryDuration: 2 * time.Hour,
	}

	for i := 0; i < 5000; i++ {
		pickup, delivery, err := w.Stages(testReference, plan)
		require.NoError(t, err)

		require.True(t, pickup.Valid())
		require.True(t, delivery.Valid())
		require.False(t, delivery.From.Before(pickup.To.Add(plan.DeliveryOffset)))
		require.LessOrEqual(t, delivery.From.Sub(pickup.To), plan.DeliveryOffset+plan.DeliveryJitter)
	}
}

func TestStagesRejectNegativeOffset(t *testing.T) {
	w := NewWindowSampler(testRand(), time.Minute)

	_, _, err := w.Stages(testReference, StagePlan{
		PickupDuration:   time.Hour,
		DeliveryOffset:   -time.Hour,
		DeliveryDuration: time.Hour,
	})
	assert.Error(t, err)
}
