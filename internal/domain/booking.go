package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one confirmed, exclusive claim on a resource for a half-open
// time interval. Active bookings for the same resource never overlap;
// cancelled bookings are kept for audit and ignored by availability.
type Booking struct {
	ID         string        `json:"id"`
	ResourceID string        `json:"resource_id"`
	Interval   Interval      `json:"interval"`
	Note       string        `json:"note,omitempty"`
	OwnerID    string        `json:"owner_id"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	ResourceID string
	Interval   Interval
	Note       string
	OwnerID    string
}
