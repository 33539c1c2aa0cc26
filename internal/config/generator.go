package config

import (
	"delivery-fixture-generator/internal/domain"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoAnchors       = errors.New("anchor table is empty")
	ErrNoCustomers     = errors.New("customer seed is empty")
	ErrInvalidRadius   = errors.New("radius must be in (0, 90] degrees")
	ErrInvalidJitter   = errors.New("jitter bounds must not be negative")
	ErrInvalidDuration = errors.New("window durations must be positive")
	ErrInvalidBatch    = errors.New("batch size must be positive")
	ErrDuplicateID     = errors.New("duplicate customer id")
)

// CustomerSeed describes one fixed customer together with the address that
// serves as its default pickup location.
type CustomerSeed struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Category     string  `json:"type"`
	Contact      string  `json:"email"`
	City         string  `json:"city"`
	Street       string  `json:"street"`
	StreetNumber string  `json:"street_number,omitempty"`
	PostalCode   string  `json:"zip"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

// Generator is the explicit configuration of one generation run.
// It is passed by value into the builder; nothing here is process-wide.
type Generator struct {
	Anchors   []domain.Anchor
	Customers []CustomerSeed

	BatchSize     int
	OrdersPerCity int

	// Maximum offset in degrees on each axis around an anchor.
	Radius float64

	ReferenceTime   time.Time
	TimeJitterBound time.Duration
	Granularity     time.Duration
	PickupDuration  time.Duration

	DeliveryOffset      time.Duration
	DeliveryJitterBound time.Duration
	DeliveryDuration    time.Duration
	SLAOffset           time.Duration

	Country string
	Seed    uint64
}

// Validate reports configuration errors. They are fatal: no output may be
// produced from an invalid configuration.
func (g Generator) Validate() error {
	if len(g.Anchors) == 0 {
		return ErrNoAnchors
	}
	if len(g.Customers) == 0 {
		return ErrNoCustomers
	}
	if !(g.Radius > 0 && g.Radius <= 90) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, g.Radius)
	}
	if g.TimeJitterBound < 0 || g.DeliveryJitterBound < 0 || g.DeliveryOffset < 0 || g.SLAOffset < 0 {
		return ErrInvalidJitter
	}
	if g.PickupDuration <= 0 || g.DeliveryDuration <= 0 || g.Granularity <= 0 {
		return ErrInvalidDuration
	}
	// postgres keeps microseconds; anything finer could collapse a window.
	for _, d := range []time.Duration{
		g.TimeJitterBound, g.Granularity, g.PickupDuration, g.DeliveryOffset,
		g.DeliveryJitterBound, g.DeliveryDuration, g.SLAOffset,
	} {
		if d%time.Microsecond != 0 {
			return fmt.Errorf("%w: %v is not a whole number of microseconds", ErrInvalidDuration, d)
		}
	}
	if g.ReferenceTime.Nanosecond()%int(time.Microsecond) != 0 {
		return fmt.Errorf("%w: reference time %s is finer than microseconds", ErrInvalidDuration, g.ReferenceTime)
	}
	for i, a := range g.Anchors {
		if !a.Coordinates().Valid() {
			return fmt.Errorf("anchor %d (%s): coordinates out of range", i, a.Name)
		}
	}
	ids := make(map[string]int, len(g.Customers))
	for i, c := range g.Customers {
		if !(domain.Coordinates{Lat: c.Lat, Lon: c.Lon}).Valid() {
			return fmt.Errorf("customer seed %d (%s): coordinates out of range", i, c.Name)
		}
		if c.ID == "" {
			continue
		}
		if j, ok := ids[c.ID]; ok {
			return fmt.Errorf("%w: %q at seeds %d and %d", ErrDuplicateID, c.ID, j, i)
		}
		ids[c.ID] = i
	}

	return nil
}

// DefaultReferenceTime is 08:00 UTC on the day after now. The whole run uses
// this single instant for every window it generates.
func DefaultReferenceTime(now time.Time) time.Time {
	d := now.UTC().AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 8, 0, 0, 0, time.UTC)
}

// Defaults returns the built-in configuration anchored at reference.
func Defaults(reference time.Time) Generator {
	return Generator{
		Anchors:             DefaultAnchors(),
		Customers:           DefaultCustomers(),
		BatchSize:           5000,
		OrdersPerCity:       8,
		Radius:              0.1,
		ReferenceTime:       reference,
		TimeJitterBound:     8 * time.Hour,
		Granularity:         time.Minute,
		PickupDuration:      time.Hour,
		DeliveryOffset:      time.Hour,
		DeliveryJitterBound: 3 * time.Hour,
		DeliveryDuration:    2 * time.Hour,
		SLAOffset:           4 * time.Hour,
		Country:             "PL",
	}
}

// LoadGenerator reads the generator configuration from the environment on
// top of Defaults. ANCHORS_PATH and CUSTOMERS_PATH replace the built-in tables.
func LoadGenerator(now time.Time) (Generator, error) {
	g := Defaults(DefaultReferenceTime(now))
	g.Country = Get("COUNTRY", g.Country)

	var err error
	if path := Get("ANCHORS_PATH", ""); path != "" {
		if g.Anchors, err = LoadAnchors(path); err != nil {
			return Generator{}, err
		}
	}
	if path := Get("CUSTOMERS_PATH", ""); path != "" {
		if g.Customers, err = LoadCustomers(path); err != nil {
			return Generator{}, err
		}
	}

	if g.BatchSize, err = GetInt("BATCH_SIZE", g.BatchSize); err != nil {
		return Generator{}, err
	}
	if g.OrdersPerCity, err = GetInt("ORDERS_PER_CITY", g.OrdersPerCity); err != nil {
		return Generator{}, err
	}
	if g.Radius, err = GetFloat("RADIUS_DEGREES", g.Radius); err != nil {
		return Generator{}, err
	}
	if g.Seed, err = GetUint64("SEED", g.Seed); err != nil {
		return Generator{}, err
	}
	if g.ReferenceTime, err = GetTime("REFERENCE_DATE", g.ReferenceTime); err != nil {
		return Generator{}, err
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"TIME_JITTER_BOUND", &g.TimeJitterBound},
		{"WINDOW_GRANULARITY", &g.Granularity},
		{"PICKUP_DURATION", &g.PickupDuration},
		{"DELIVERY_OFFSET", &g.DeliveryOffset},
		{"DELIVERY_JITTER_BOUND", &g.DeliveryJitterBound},
		{"DELIVERY_DURATION", &g.DeliveryDuration},
		{"SLA_OFFSET", &g.SLAOffset},
	}
	for _, d := range durations {
		if *d.dst, err = GetDuration(d.key, *d.dst); err != nil {
			return Generator{}, err
		}
	}

	if g.BatchSize <= 0 || g.OrdersPerCity <= 0 {
		return Generator{}, fmt.Errorf("load generator config: %w", ErrInvalidBatch)
	}
	if err := g.Validate(); err != nil {
		return Generator{}, fmt.Errorf("load generator config: %w", err)
	}

	return g, nil
}
