package ports

import (
	"context"

	"github.com/wilbyang/reserver/internal/domain"
)

type BookingRepo interface {
	// Create inserts a new active booking. The storage layer carries a
	// range-exclusion constraint and is the final arbiter: a conflicting
	// insert that slipped past the application-level check comes back as
	// domain.ErrTimeConflict.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Cancel flips an active booking to cancelled. The bool reports whether
	// a row actually changed; cancelling an already-cancelled booking is
	// a no-op.
	Cancel(ctx context.Context, id string) (bool, error)
	ListActive(ctx context.Context, resourceID string, window domain.Interval) ([]*domain.Booking, error)
	ListAllActive(ctx context.Context) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)
}

// BookingCreator is the slice of the booking ledger the waitlist needs to
// turn a notified entry into a real booking.
type BookingCreator interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
}
