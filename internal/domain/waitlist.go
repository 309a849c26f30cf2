package domain

import "time"

type WaitlistStatus string

const (
	WaitlistStatusPending   WaitlistStatus = "pending"
	WaitlistStatusNotified  WaitlistStatus = "notified"
	WaitlistStatusBooked    WaitlistStatus = "booked"
	WaitlistStatusExpired   WaitlistStatus = "expired"
	WaitlistStatusCancelled WaitlistStatus = "cancelled"
)

// WaitlistEntry records unmet demand for a resource/time window.
//
// Legal transitions: Pending→Notified, Notified→Booked, Notified→Expired,
// and any non-terminal state→Cancelled. Terminal rows are never deleted.
type WaitlistEntry struct {
	ID         string         `json:"id"`
	ResourceID string         `json:"resource_id"`
	OwnerID    string         `json:"owner_id"`
	Preferred  Interval       `json:"preferred_interval"`
	Note       string         `json:"note,omitempty"`
	Status     WaitlistStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type EnqueueWaitlistInput struct {
	ResourceID string
	OwnerID    string
	Preferred  Interval
	Note       string
}
