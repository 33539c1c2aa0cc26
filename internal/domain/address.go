package domain

import "time"

// Represents a pickup or delivery location.
// OwnerCustomerID is nil for ad hoc delivery addresses that no customer owns.
// SLA is only meaningful for delivery addresses.
type Address struct {
	ID              string
	OwnerCustomerID *string
	CustomerName    string
	Street          string
	StreetNumber    *string
	Apartment       *string
	City            string
	PostalCode      string
	Country         string
	Coordinates
	SLA *time.Time
}
