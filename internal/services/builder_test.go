package services

import (
	"delivery-fixture-generator/internal/config"
	"delivery-fixture-generator/internal/domain"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderFailsFastOnEmptyTables(t *testing.T) {
	cfg := testConfig()
	cfg.Anchors = nil
	_, err := NewBuilder(cfg)
	assert.ErrorIs(t, err, config.ErrNoAnchors)

	cfg = testConfig()
	cfg.Customers = nil
	_, err = NewBuilder(cfg)
	assert.ErrorIs(t, err, config.ErrNoCustomers)

	cfg = testConfig()
	cfg.Radius = 0
	_, err = NewBuilder(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidRadius)

	cfg = testConfig()
	cfg.TimeJitterBound = -time.Minute
	_, err = NewBuilder(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidJitter)
}

func TestBuildRejectsNonPositiveBatch(t *testing.T) {
	b, err := NewBuilder(testConfig())
	require.NoError(t, err)

	_, err = b.Build(0)
	assert.ErrorIs(t, err, config.ErrInvalidBatch)
}

func TestBuildProducesClosedGraph(t *testing.T) {
	b, err := NewBuilder(testConfig())
	require.NoError(t, err)

	g, err := b.Build(5000)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	assert.Len(t, g.Customers, 7)
	assert.Len(t, g.Orders, 5000)
	assert.Len(t, g.Addresses, 7+5000)

	pickupByCustomer := map[string]string{}
	for _, a := range g.Addresses[:7] {
		require.NotNil(t, a.OwnerCustomerID)
		pickupByCustomer[*a.OwnerCustomerID] = a.ID
	}

	seen := map[string]struct{}{}
	for _, o := range g.Orders {
		assert.Equal(t, pickupByCustomer[o.CustomerID], o.Pickup.ID, "pickup address is the customer's own")
		assert.Nil(t, o.Delivery.OwnerCustomerID, "delivery addresses are ad hoc")

		assert.True(t, o.Pickup.Valid())
		assert.True(t, o.Delivery.Valid())
		assert.True(t, o.DeliveryWindow.To.After(o.DeliveryWindow.From))
		assert.True(t, o.PickupWindow.To.After(o.PickupWindow.From))
		assert.False(t, o.DeliveryWindow.From.Before(o.PickupWindow.To))

		assert.Equal(t, domain.OrderStatusNew, o.Status)
		assert.Equal(t, domain.PriorityNormal, o.Priority)
		assert.Equal(t, domain.DeliveryTypeDay, o.DeliveryType)

		for _, id := range []string{o.ID, o.Delivery.ID} {
			_, dup := seen[id]
			require.False(t, dup, "identity %s generated twice", id)
			seen[id] = struct{}{}
		}
	}
}

func TestBuildIsReproducibleWithSeed(t *testing.T) {
	clock := WithClock(func() time.Time { return testReference })

	b1, err := NewBuilder(testConfig(), clock)
	require.NoError(t, err)
	b2, err := NewBuilder(testConfig(), clock)
	require.NoError(t, err)

	g1, err := b1.Build(50)
	require.NoError(t, err)
	g2, err := b2.Build(50)
	require.NoError(t, err)

	for i := range g1.Orders {
		assert.Equal(t, g1.Orders[i].ID, g2.Orders[i].ID)
		assert.Equal(t, g1.Orders[i].Delivery.Coordinates, g2.Orders[i].Delivery.Coordinates)
		assert.Equal(t, g1.Orders[i].DeliveryWindow, g2.Orders[i].DeliveryWindow)
	}
}

func TestBuildAppliesOverrides(t *testing.T) {
	b, err := NewBuilder(testConfig(), WithOverrides(Overrides{
		Status:       domain.OrderStatusPending,
		Priority:     domain.PriorityCritical,
		DeliveryType: domain.DeliveryTypeExpress,
	}))
	require.NoError(t, err)

	g, err := b.Build(10)
	require.NoError(t, err)

	for _, o := range g.Orders {
		assert.Equal(t, domain.OrderStatusPending, o.Status)
		assert.Equal(t, domain.PriorityCritical, o.Priority)
		assert.Equal(t, domain.DeliveryTypeExpress, o.DeliveryType)
	}
}

func TestSeededCustomerIDsAreKept(t *testing.T) {
	cfg := testConfig()
	cfg.Customers = []config.CustomerSeed{{
		ID: "00000000-0000-0000-0000-000000000001", Name: "Central Hub Warsaw", Category: "B2B",
		City: "Warszawa", Street: "Magazynowa", StreetNumber: "1", PostalCode: "00-001",
		Lat: 52.2297, Lon: 21.0122,
	}}

	b, err := NewBuilder(cfg)
	require.NoError(t, err)

	require.Len(t, b.Customers(), 1)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", b.Customers()[0].ID)
}

func TestDistributeRoundRobinsAcrossCities(t *testing.T) {
	cfg := testConfig()
	b, err := NewBuilder(cfg)
	require.NoError(t, err)

	perCity := map[string]int{}
	var customers []string
	err = b.Distribute(8, func(o *domain.Order) error {
		perCity[o.Delivery.City]++
		customers = append(customers, o.CustomerID)
		require.NoError(t, o.Validate())
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, customers, 104)
	assert.Len(t, perCity, 13)
	for city, n := range perCity {
		assert.Equal(t, 8, n, city)
	}

	ids := b.Customers()
	for i, id := range customers {
		assert.Equal(t, ids[i%len(ids)].ID, id)
	}
}

func TestDistributeStopsOnEmitError(t *testing.T) {
	b, err := NewBuilder(testConfig())
	require.NoError(t, err)

	stop := errors.New("stop")
	calls := 0
	err = b.Distribute(8, func(*domain.Order) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)
}

func TestBuilderClockAndStreets(t *testing.T) {
	created := time.Date(2026, 2, 3, 4, 5, 6, 789, time.UTC)
	b, err := NewBuilder(testConfig(),
		WithClock(func() time.Time { return created }),
		WithStreets([]string{"Testowa"}))
	require.NoError(t, err)

	g, err := b.Build(20)
	require.NoError(t, err)

	for _, o := range g.Orders {
		assert.Equal(t, created.Truncate(time.Second), o.CreatedAt)
		assert.Equal(t, "Testowa", o.Delivery.Street)
	}
}

func TestNewBuilderRejectsDuplicateSeedIDs(t *testing.T) {
	cfg := testConfig()
	for i := range cfg.Customers {
		cfg.Customers[i].ID = "same-id"
	}

	_, err := NewBuilder(cfg)
	assert.ErrorIs(t, err, config.ErrDuplicateID)
}

func TestBuildKeepsSubSecondWindowsOpen(t *testing.T) {
	cfg := testConfig()
	cfg.PickupDuration = 500 * time.Millisecond
	cfg.Granularity = 250 * time.Millisecond

	b, err := NewBuilder(cfg)
	require.NoError(t, err)

	g, err := b.Build(50)
	require.NoError(t, err)
	for _, o := range g.Orders {
		assert.Equal(t, 500*time.Millisecond, o.PickupWindow.To.Sub(o.PickupWindow.From))
	}
}
