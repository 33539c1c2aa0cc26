package ports

import "delivery-fixture-generator/internal/domain"

// Port: a boundary for producing orders one at a time, in emission order.
type OrderSource interface {
	// Call emit for every order of the run; a non-nil error from emit stops the stream.
	Distribute(perAnchor int, emit func(*domain.Order) error) error
}
