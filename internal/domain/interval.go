package domain

import "time"

// Interval is a half-open time range [Start, End): the start instant is
// occupied, the end instant is free. Two bookings may share a boundary.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether the interval is non-empty.
func (iv Interval) Valid() bool {
	return iv.Start.Before(iv.End)
}

func (iv Interval) IsZero() bool {
	return iv.Start.IsZero() && iv.End.IsZero()
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not count.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}
