package orderapi

import (
	"delivery-fixture-generator/internal/domain"
	"time"
)

type addressPayload struct {
	CustomerName string  `json:"customerName,omitempty"`
	Street       string  `json:"street"`
	StreetNumber *string `json:"streetNumber"`
	Apartment    *string `json:"apartment,omitempty"`
	City         string  `json:"city"`
	PostalCode   string  `json:"postalCode"`
	Country      string  `json:"country"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	SLA          string  `json:"sla,omitempty"`
}

type packagePayload struct {
	Weight      float64 `json:"weight"`
	Volume      float64 `json:"volume"`
	Description string  `json:"description"`
}

// CreateOrderRequest is the body of one order-creation call. Addresses are
// embedded, not referenced: the receiving service creates them itself.
type CreateOrderRequest struct {
	CustomerID           string          `json:"customerId"`
	Priority             string          `json:"priority"`
	Remark               string          `json:"remark"`
	PickupAddress        addressPayload  `json:"pickupAddress"`
	DeliveryAddress      addressPayload  `json:"deliveryAddress"`
	PackageDetails       *packagePayload `json:"packageDetails,omitempty"`
	RequiredServiceCodes []string        `json:"requiredServiceCodes"`
	PickupTimeFrom       string          `json:"pickupTimeFrom,omitempty"`
	PickupTimeTo         string          `json:"pickupTimeTo,omitempty"`
	DeliveryTimeFrom     string          `json:"deliveryTimeFrom"`
	DeliveryTimeTo       string          `json:"deliveryTimeTo"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
}

func NewCreateOrderRequest(o *domain.Order) CreateOrderRequest {
	req := CreateOrderRequest{
		CustomerID:           o.CustomerID,
		Priority:             string(o.Priority),
		Remark:               o.Remark,
		PickupAddress:        newAddressPayload(o.Pickup),
		DeliveryAddress:      newAddressPayload(o.Delivery),
		RequiredServiceCodes: o.RequiredServiceCodes,
		DeliveryTimeFrom:     isoTime(o.DeliveryWindow.From),
		DeliveryTimeTo:       isoTime(o.DeliveryWindow.To),
	}

	if req.RequiredServiceCodes == nil {
		req.RequiredServiceCodes = []string{}
	}

	if !o.PickupWindow.IsZero() {
		req.PickupTimeFrom = isoTime(o.PickupWindow.From)
		req.PickupTimeTo = isoTime(o.PickupWindow.To)
	}

	if o.Package != nil {
		req.PackageDetails = &packagePayload{
			Weight:      o.Package.Weight,
			Volume:      o.Package.Volume,
			Description: o.Package.Description,
		}
	}

	return req
}

func newAddressPayload(a *domain.Address) addressPayload {
	p := addressPayload{
		CustomerName: a.CustomerName,
		Street:       a.Street,
		StreetNumber: a.StreetNumber,
		Apartment:    a.Apartment,
		City:         a.City,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Lat:          a.Lat,
		Lon:          a.Lon,
	}
	if a.SLA != nil {
		p.SLA = isoTime(*a.SLA)
	}
	return p
}

// Fractional seconds are kept; whole seconds render without a fraction.
func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
