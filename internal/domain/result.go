package domain

type Outcome int

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Key fields of a submitted order, kept so failures can be traced back
// without holding on to the full payload.
type PayloadSummary struct {
	CustomerID string
	City       string
	Remark     string
}

// Result of submitting one order. Success carries the identity assigned by
// the receiving side; Failure carries the reason and the payload summary.
type Result struct {
	Outcome Outcome
	OrderID string
	Reason  string
	Summary PayloadSummary
}

func Success(orderID string) Result {
	return Result{Outcome: OutcomeSuccess, OrderID: orderID}
}

func Failure(reason string, summary PayloadSummary) Result {
	return Result{Outcome: OutcomeFailure, Reason: reason, Summary: summary}
}

func (r Result) OK() bool { return r.Outcome == OutcomeSuccess }

func Summarize(o *Order) PayloadSummary {
	s := PayloadSummary{CustomerID: o.CustomerID, Remark: o.Remark}
	if o.Delivery != nil {
		s.City = o.Delivery.City
	}
	return s
}

// Report aggregates per-item results of a best-effort load.
type Report struct {
	Results   []Result
	Succeeded int
	Total     int
}

func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
	r.Total++
	if res.OK() {
		r.Succeeded++
	}
}

func (r *Report) Failed() int { return r.Total - r.Succeeded }
