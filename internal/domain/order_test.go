package domain

import (
	"errors"
	"testing"
	"time"
)

func validOrder() *Order {
	owner := "c1"
	t0 := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	return &Order{
		ID:         "o1",
		CustomerID: "c1",
		Pickup: &Address{
			ID:              "a1",
			OwnerCustomerID: &owner,
			Coordinates:     Coordinates{Lat: 52.2297, Lon: 21.0122},
		},
		Delivery: &Address{
			ID:          "a2",
			City:        "Kraków",
			Coordinates: Coordinates{Lat: 50.0647, Lon: 19.9450},
		},
		Status:         OrderStatusNew,
		PickupWindow:   TimeWindow{From: t0, To: t0.Add(time.Hour)},
		DeliveryWindow: TimeWindow{From: t0.Add(2 * time.Hour), To: t0.Add(4 * time.Hour)},
	}
}

func TestOrderValidate(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr bool
	}{
		{name: "valid", mutate: func(o *Order) {}},
		{name: "no pickup window", mutate: func(o *Order) { o.PickupWindow = TimeWindow{} }},
		{
			name:    "empty delivery window",
			mutate:  func(o *Order) { o.DeliveryWindow.To = o.DeliveryWindow.From },
			wantErr: true,
		},
		{
			name:    "inverted pickup window",
			mutate:  func(o *Order) { o.PickupWindow = TimeWindow{From: t0.Add(time.Hour), To: t0} },
			wantErr: true,
		},
		{
			name: "delivery before pickup end",
			mutate: func(o *Order) {
				o.DeliveryWindow = TimeWindow{From: t0.Add(30 * time.Minute), To: t0.Add(3 * time.Hour)}
			},
			wantErr: true,
		},
		{
			name:   "delivery starts exactly at pickup end",
			mutate: func(o *Order) { o.DeliveryWindow.From = o.PickupWindow.To },
		},
		{name: "latitude out of range", mutate: func(o *Order) { o.Delivery.Lat = 90.5 }, wantErr: true},
		{name: "longitude out of range", mutate: func(o *Order) { o.Pickup.Lon = -180.1 }, wantErr: true},
		{name: "missing delivery", mutate: func(o *Order) { o.Delivery = nil }, wantErr: true},
		{name: "missing customer", mutate: func(o *Order) { o.CustomerID = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(o)

			err := o.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidOrder) {
				t.Fatalf("Validate() = %v, want ErrInvalidOrder", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGraphValidateReferences(t *testing.T) {
	o := validOrder()
	customer := &Customer{ID: "c1", Name: "Acme", Category: CustomerBusiness}

	g := &Graph{
		Customers: []*Customer{customer},
		Addresses: []*Address{o.Pickup, o.Delivery},
		Orders:    []*Order{o},
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// drop the delivery address: the order now points outside the graph
	g.Addresses = g.Addresses[:1]
	if err := g.Validate(); !errors.Is(err, ErrBrokenReference) {
		t.Fatalf("Validate() = %v, want ErrBrokenReference", err)
	}

	g.Addresses = []*Address{o.Pickup, o.Delivery}
	g.Customers = nil
	if err := g.Validate(); !errors.Is(err, ErrBrokenReference) {
		t.Fatalf("Validate() = %v, want ErrBrokenReference", err)
	}
}

func TestReportCounts(t *testing.T) {
	var r Report
	r.Add(Success("x1"))
	r.Add(Failure("rejected", PayloadSummary{CustomerID: "c1"}))
	r.Add(Success("x2"))

	if r.Total != 3 || r.Succeeded != 2 || r.Failed() != 1 {
		t.Errorf("report = total %d succeeded %d failed %d, want 3/2/1", r.Total, r.Succeeded, r.Failed())
	}
	if r.Results[1].Outcome != OutcomeFailure || r.Results[1].Reason != "rejected" {
		t.Errorf("second result = %+v, want failure with reason", r.Results[1])
	}
}

func TestGraphValidateRejectsDuplicateIDs(t *testing.T) {
	tests := []struct {
		name  string
		graph func(o *Order) *Graph
	}{
		{"customers", func(o *Order) *Graph {
			return &Graph{
				Customers: []*Customer{{ID: "c1"}, {ID: "c1"}},
				Addresses: []*Address{o.Pickup, o.Delivery},
				Orders:    []*Order{o},
			}
		}},
		{"addresses", func(o *Order) *Graph {
			o.Delivery.ID = o.Pickup.ID
			return &Graph{
				Customers: []*Customer{{ID: "c1"}},
				Addresses: []*Address{o.Pickup, o.Delivery},
				Orders:    []*Order{o},
			}
		}},
		{"orders", func(o *Order) *Graph {
			twin := *o
			return &Graph{
				Customers: []*Customer{{ID: "c1"}},
				Addresses: []*Address{o.Pickup, o.Delivery},
				Orders:    []*Order{o, &twin},
			}
		}},
		{"across sets", func(o *Order) *Graph {
			o.ID = "c1"
			return &Graph{
				Customers: []*Customer{{ID: "c1"}},
				Addresses: []*Address{o.Pickup, o.Delivery},
				Orders:    []*Order{o},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.graph(validOrder()).Validate(); !errors.Is(err, ErrDuplicateID) {
				t.Fatalf("Validate() = %v, want ErrDuplicateID", err)
			}
		})
	}
}
