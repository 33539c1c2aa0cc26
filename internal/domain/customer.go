package domain

type CustomerCategory string

const (
	CustomerBusiness   CustomerCategory = "B2B"
	CustomerIndividual CustomerCategory = "B2C"
)

func (c CustomerCategory) Valid() bool {
	return c == CustomerBusiness || c == CustomerIndividual
}

// Customer ordering deliveries. Created once per run and never mutated afterwards.
type Customer struct {
	ID       string
	Name     string
	Category CustomerCategory
	Contact  string
}
