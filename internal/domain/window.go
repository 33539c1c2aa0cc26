package domain

import "time"

// Half-open time interval [From, To) during which a stage may happen.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

// A window is valid only when it has a strictly positive length.
func (w TimeWindow) Valid() bool { return w.To.After(w.From) }

func (w TimeWindow) IsZero() bool { return w.From.IsZero() && w.To.IsZero() }
