package sqlscript

import (
	"delivery-fixture-generator/internal/domain"
	"fmt"
	"io"
	"strings"

	"github.com/lib/pq"
)

// Target relation names.
type Tables struct {
	Customers string
	Addresses string
	Orders    string
}

func DefaultTables() Tables {
	return Tables{
		Customers: "vt_customers",
		Addresses: "vt_addresses",
		Orders:    "vt_orders",
	}
}

// Column order matches the declared schema of each relation.
var (
	customerColumns = []string{"customer_id", "customer_name", "customer_type", "contact_email"}

	addressColumns = []string{
		"address_id", "owner_customer_id", "city", "street", "street_number",
		"apartment", "postal_code", "lat", "lon",
	}

	orderColumns = []string{
		"order_id", "ordering_customer_id", "pickup_address_id", "delivery_address_id",
		"status", "created", "pickup_time_from", "pickup_time_to",
		"delivery_time_from", "delivery_time_to", "delivery_type", "priority",
		"package_weight", "package_volume", "package_description", "remark",
	}
)

// Renderer turns a generated graph into one transactional bulk-load script.
type Renderer struct {
	tables Tables
}

func NewRenderer(tables Tables) *Renderer {
	return &Renderer{tables: tables}
}

// Render writes BEGIN, a reset of every relation (children first), the
// customer, address and order inserts (parents first) and COMMIT.
// The script is built in memory and written in one call, so a value that
// cannot be escaped aborts the whole script and nothing reaches w.
func (r *Renderer) Render(w io.Writer, g *domain.Graph) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("render script: %w", err)
	}

	var sb strings.Builder
	sb.Grow(512 * (len(g.Customers) + len(g.Addresses) + len(g.Orders)))

	sb.WriteString("BEGIN;\n")
	for _, table := range []string{r.tables.Orders, r.tables.Addresses, r.tables.Customers} {
		fmt.Fprintf(&sb, "TRUNCATE TABLE %s CASCADE;\n", pq.QuoteIdentifier(table))
	}

	for _, c := range g.Customers {
		err := r.insert(&sb, r.tables.Customers, customerColumns,
			c.ID, c.Name, string(c.Category), c.Contact)
		if err != nil {
			return fmt.Errorf("render script: customer %s: %w", c.ID, err)
		}
	}

	for _, a := range g.Addresses {
		err := r.insert(&sb, r.tables.Addresses, addressColumns,
			a.ID, a.OwnerCustomerID, a.City, a.Street, a.StreetNumber,
			a.Apartment, a.PostalCode, a.Lat, a.Lon)
		if err != nil {
			return fmt.Errorf("render script: address %s: %w", a.ID, err)
		}
	}

	for _, o := range g.Orders {
		var weight, volume, description any
		if o.Package != nil {
			weight, volume, description = o.Package.Weight, o.Package.Volume, o.Package.Description
		}

		err := r.insert(&sb, r.tables.Orders, orderColumns,
			o.ID, o.CustomerID, o.Pickup.ID, o.Delivery.ID,
			string(o.Status), o.CreatedAt, o.PickupWindow.From, o.PickupWindow.To,
			o.DeliveryWindow.From, o.DeliveryWindow.To, string(o.DeliveryType), string(o.Priority),
			weight, volume, description, o.Remark)
		if err != nil {
			return fmt.Errorf("render script: order %s: %w", o.ID, err)
		}
	}

	sb.WriteString("COMMIT;\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("render script: write: %w", err)
	}

	return nil
}

func (r *Renderer) insert(sb *strings.Builder, table string, columns []string, values ...any) error {
	if len(values) != len(columns) {
		return fmt.Errorf("insert %s: %d values for %d columns", table, len(values), len(columns))
	}

	literals := make([]string, len(values))
	for i, v := range values {
		lit, err := Literal(v)
		if err != nil {
			return fmt.Errorf("column %s: %w", columns[i], err)
		}
		literals[i] = lit
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pq.QuoteIdentifier(c)
	}

	fmt.Fprintf(sb, "INSERT INTO %s (%s) VALUES (%s);\n",
		pq.QuoteIdentifier(table), strings.Join(quoted, ", "), strings.Join(literals, ", "))
	return nil
}
