package domain

import (
	"errors"
	"fmt"
)

// Graph is the complete entity set of one generation run.
// Addresses hold both customer-owned pickup addresses and ad hoc delivery addresses.
type Graph struct {
	Customers []*Customer
	Addresses []*Address
	Orders    []*Order
}

var (
	ErrBrokenReference = errors.New("broken reference")
	ErrDuplicateID     = errors.New("duplicate id")
)

// Validate checks referential closure: every customer, pickup and delivery
// reference must point at an entity of the same graph, and every order must
// satisfy its own invariants. Identities are unique across the whole graph.
func (g *Graph) Validate() error {
	seen := make(map[string]string, len(g.Customers)+len(g.Addresses)+len(g.Orders))
	claim := func(kind, id string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("validate graph: %s %s already used by %s: %w", kind, id, prev, ErrDuplicateID)
		}
		seen[id] = kind
		return nil
	}

	customers := make(map[string]struct{}, len(g.Customers))
	for _, c := range g.Customers {
		if err := claim("customer", c.ID); err != nil {
			return err
		}
		customers[c.ID] = struct{}{}
	}

	addresses := make(map[string]struct{}, len(g.Addresses))
	for _, a := range g.Addresses {
		if !a.Valid() {
			return fmt.Errorf("validate graph: address %s coordinates out of range: %+v", a.ID, a.Coordinates)
		}
		if a.OwnerCustomerID != nil {
			if _, ok := customers[*a.OwnerCustomerID]; !ok {
				return fmt.Errorf("validate graph: address %s owner %s: %w", a.ID, *a.OwnerCustomerID, ErrBrokenReference)
			}
		}
		if err := claim("address", a.ID); err != nil {
			return err
		}
		addresses[a.ID] = struct{}{}
	}

	for _, o := range g.Orders {
		if err := claim("order", o.ID); err != nil {
			return err
		}
		if err := o.Validate(); err != nil {
			return fmt.Errorf("validate graph: %w", err)
		}
		if _, ok := customers[o.CustomerID]; !ok {
			return fmt.Errorf("validate graph: order %s customer %s: %w", o.ID, o.CustomerID, ErrBrokenReference)
		}
		if _, ok := addresses[o.Pickup.ID]; !ok {
			return fmt.Errorf("validate graph: order %s pickup address %s: %w", o.ID, o.Pickup.ID, ErrBrokenReference)
		}
		if _, ok := addresses[o.Delivery.ID]; !ok {
			return fmt.Errorf("validate graph: order %s delivery address %s: %w", o.ID, o.Delivery.ID, ErrBrokenReference)
		}
	}

	return nil
}
