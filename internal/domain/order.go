package domain

import (
	"errors"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusNew     OrderStatus = "NEW"
	OrderStatusPickup  OrderStatus = "PICKUP"
	OrderStatusPSIP    OrderStatus = "PSIP"
	OrderStatusLoad    OrderStatus = "LOAD"
	OrderStatusTerm    OrderStatus = "TERM"
	OrderStatusPOD     OrderStatus = "POD"
)

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityNormal   Priority = "NORMAL"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

type DeliveryType string

const (
	DeliveryTypeDay     DeliveryType = "DAY_DELIVERY"
	DeliveryTypeSameDay DeliveryType = "SAME_DAY"
	DeliveryTypeExpress DeliveryType = "EXPRESS"
)

type PackageDetails struct {
	Weight      float64
	Volume      float64
	Description string
}

// Order is a single delivery request. Pickup and Delivery point at the
// addresses the order references; the bulk script path only uses their IDs,
// the API path embeds them as nested payloads.
type Order struct {
	ID                   string
	CustomerID           string
	Pickup               *Address
	Delivery             *Address
	Status               OrderStatus
	CreatedAt            time.Time
	PickupWindow         TimeWindow
	DeliveryWindow       TimeWindow
	DeliveryType         DeliveryType
	Priority             Priority
	Package              *PackageDetails
	Remark               string
	RequiredServiceCodes []string
}

var ErrInvalidOrder = errors.New("invalid order")

// Validate checks the generation invariants: both addresses present with
// valid coordinates, a non-empty delivery window, and, when a pickup window
// exists, pickup ending no later than delivery starts.
func (o *Order) Validate() error {
	if o.CustomerID == "" {
		return fmt.Errorf("%w %s: customer reference is empty", ErrInvalidOrder, o.ID)
	}
	if o.Pickup == nil || o.Delivery == nil {
		return fmt.Errorf("%w %s: pickup and delivery addresses are required", ErrInvalidOrder, o.ID)
	}
	if !o.Pickup.Valid() {
		return fmt.Errorf("%w %s: pickup coordinates out of range: %+v", ErrInvalidOrder, o.ID, o.Pickup.Coordinates)
	}
	if !o.Delivery.Valid() {
		return fmt.Errorf("%w %s: delivery coordinates out of range: %+v", ErrInvalidOrder, o.ID, o.Delivery.Coordinates)
	}
	if !o.DeliveryWindow.Valid() {
		return fmt.Errorf("%w %s: delivery window to <= from", ErrInvalidOrder, o.ID)
	}
	if o.PickupWindow.IsZero() {
		return nil
	}
	if !o.PickupWindow.Valid() {
		return fmt.Errorf("%w %s: pickup window to <= from", ErrInvalidOrder, o.ID)
	}
	if o.DeliveryWindow.From.Before(o.PickupWindow.To) {
		return fmt.Errorf("%w %s: delivery starts before pickup ends", ErrInvalidOrder, o.ID)
	}

	return nil
}
