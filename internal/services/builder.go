package services

import (
	"delivery-fixture-generator/internal/config"
	"delivery-fixture-generator/internal/domain"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Overrides replace the default enumerated fields of every generated order.
// Zero values keep the defaults.
type Overrides struct {
	Status       domain.OrderStatus
	Priority     domain.Priority
	DeliveryType domain.DeliveryType
}

type Option func(*Builder)

func WithOverrides(o Overrides) Option {
	return func(b *Builder) { b.overrides = o }
}

// WithClock fixes the instant recorded as the creation timestamp of every order.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

func WithStreets(streets []string) Option {
	return func(b *Builder) {
		if len(streets) > 0 {
			b.streets = slices.Clone(streets)
		}
	}
}

// Builder assembles a referentially closed entity set from the configured
// anchors and customer seed. Customers and their pickup addresses are created
// once, in NewBuilder; orders reference them and never the other way round.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	cfg       config.Generator
	rng       *rand.Rand
	newID     func() string
	geo       *GeoSampler
	windows   *WindowSampler
	overrides Overrides
	streets   []string
	now       func() time.Time
	createdAt time.Time

	customers []*domain.Customer
	pickups   []*domain.Address
}

func NewBuilder(cfg config.Generator, opts ...Option) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new builder: %w", err)
	}

	b := &Builder{
		cfg:     cfg,
		streets: config.DefaultStreets(),
		now:     time.Now,
	}

	// A non-zero seed makes the run reproducible, identities included.
	if cfg.Seed != 0 {
		var seed [32]byte
		binary.LittleEndian.PutUint64(seed[:8], cfg.Seed)
		src := rand.NewChaCha8(seed)
		b.rng = rand.New(src)
		b.newID = func() string { return uuid.Must(uuid.NewRandomFromReader(src)).String() }
	} else {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		b.newID = uuid.NewString
	}

	for _, opt := range opts {
		opt(b)
	}

	b.geo = NewGeoSampler(b.rng)
	b.windows = NewWindowSampler(b.rng, cfg.Granularity)
	b.createdAt = b.now().UTC().Truncate(time.Second)

	for _, seed := range cfg.Customers {
		customer, pickup := b.newCustomer(seed)
		b.customers = append(b.customers, customer)
		b.pickups = append(b.pickups, pickup)
	}

	return b, nil
}

func (b *Builder) Customers() []*domain.Customer { return b.customers }

func (b *Builder) newCustomer(seed config.CustomerSeed) (*domain.Customer, *domain.Address) {
	id := seed.ID
	if id == "" {
		id = b.newID()
	}

	category := domain.CustomerCategory(seed.Category)
	if !category.Valid() {
		category = domain.CustomerBusiness
	}

	customer := &domain.Customer{
		ID:       id,
		Name:     seed.Name,
		Category: category,
		Contact:  seed.Contact,
	}

	owner := id
	pickup := &domain.Address{
		ID:              b.newID(),
		OwnerCustomerID: &owner,
		CustomerName:    seed.Name,
		Street:          seed.Street,
		StreetNumber:    optional(seed.StreetNumber),
		City:            seed.City,
		PostalCode:      seed.PostalCode,
		Country:         b.cfg.Country,
		Coordinates:     domain.Coordinates{Lat: seed.Lat, Lon: seed.Lon},
	}

	return customer, pickup
}

// Build generates n orders for the bulk script path. Customers and
// destination anchors are chosen uniformly; each customer's pickup address is
// reused and every order gets a fresh, unowned delivery address.
func (b *Builder) Build(n int) (*domain.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("build graph: %w: got %d", config.ErrInvalidBatch, n)
	}

	g := &domain.Graph{
		Customers: b.customers,
		Addresses: make([]*domain.Address, 0, len(b.pickups)+n),
		Orders:    make([]*domain.Order, 0, n),
	}
	g.Addresses = append(g.Addresses, b.pickups...)

	for i := 0; i < n; i++ {
		ci := b.rng.IntN(len(b.customers))
		anchor := b.cfg.Anchors[b.rng.IntN(len(b.cfg.Anchors))]

		order, err := b.newOrder(ci, anchor, fmt.Sprintf("Fixture order #%d", i+1), domain.PriorityNormal)
		if err != nil {
			return nil, fmt.Errorf("build graph: order %d: %w", i+1, err)
		}

		g.Addresses = append(g.Addresses, order.Delivery)
		g.Orders = append(g.Orders, order)
	}

	return g, nil
}

// Distribute generates perAnchor orders for every anchor, in table order,
// and hands them to emit one at a time. Customers are assigned round-robin.
func (b *Builder) Distribute(perAnchor int, emit func(*domain.Order) error) error {
	if perAnchor <= 0 {
		return fmt.Errorf("distribute orders: %w: got %d", config.ErrInvalidBatch, perAnchor)
	}

	k := 0
	for _, anchor := range b.cfg.Anchors {
		for i := 0; i < perAnchor; i++ {
			ci := k % len(b.customers)
			k++

			remark := fmt.Sprintf("Nationwide fixture: %s #%d", anchor.Name, i+1)
			order, err := b.newOrder(ci, anchor, remark, b.weightedPriority())
			if err != nil {
				return fmt.Errorf("distribute orders: %s #%d: %w", anchor.Name, i+1, err)
			}

			if err := emit(order); err != nil {
				return err
			}
		}
	}

	return nil
}

// Three in four distributed orders are NORMAL, the rest HIGH.
func (b *Builder) weightedPriority() domain.Priority {
	if b.rng.IntN(4) == 0 {
		return domain.PriorityHigh
	}
	return domain.PriorityNormal
}

func (b *Builder) newOrder(ci int, anchor domain.Anchor, remark string, priority domain.Priority) (*domain.Order, error) {
	coords, err := b.geo.Sample(anchor.Coordinates(), b.cfg.Radius)
	if err != nil {
		return nil, err
	}

	pickupWindow, deliveryWindow, err := b.windows.Stages(b.cfg.ReferenceTime, StagePlan{
		PickupJitter:     b.cfg.TimeJitterBound,
		PickupDuration:   b.cfg.PickupDuration,
		DeliveryOffset:   b.cfg.DeliveryOffset,
		DeliveryJitter:   b.cfg.DeliveryJitterBound,
		DeliveryDuration: b.cfg.DeliveryDuration,
	})
	if err != nil {
		return nil, err
	}

	sla := deliveryWindow.To.Add(b.cfg.SLAOffset)
	number := strconv.Itoa(1 + b.rng.IntN(150))

	var apartment *string
	if b.rng.Float64() < 0.7 {
		apt := strconv.Itoa(1 + b.rng.IntN(50))
		apartment = &apt
	}

	delivery := &domain.Address{
		ID:           b.newID(),
		CustomerName: "Recipient " + anchor.Name,
		Street:       b.streets[b.rng.IntN(len(b.streets))],
		StreetNumber: &number,
		Apartment:    apartment,
		City:         anchor.Name,
		PostalCode:   b.geo.PostalCode(anchor.PostalPrefix),
		Country:      b.cfg.Country,
		Coordinates:  coords,
		SLA:          &sla,
	}

	weight := round(1+b.rng.Float64()*49, 2)
	volume := round(0.01+b.rng.Float64()*0.49, 3)

	order := &domain.Order{
		ID:             b.newID(),
		CustomerID:     b.customers[ci].ID,
		Pickup:         b.pickups[ci],
		Delivery:       delivery,
		Status:         pick(b.overrides.Status, domain.OrderStatusNew),
		CreatedAt:      b.createdAt,
		PickupWindow:   pickupWindow,
		DeliveryWindow: deliveryWindow,
		DeliveryType:   pick(b.overrides.DeliveryType, domain.DeliveryTypeDay),
		Priority:       pick(b.overrides.Priority, priority),
		Package: &domain.PackageDetails{
			Weight:      weight,
			Volume:      volume,
			Description: fmt.Sprintf("Test Package (%.2fkg, %.3fm³)", weight, volume),
		},
		Remark:               remark,
		RequiredServiceCodes: []string{},
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

func pick[T comparable](override, fallback T) T {
	var zero T
	if override != zero {
		return override
	}
	return fallback
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}
