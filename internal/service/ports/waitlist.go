package ports

import (
	"context"
	"time"

	"github.com/wilbyang/reserver/internal/domain"
)

type WaitlistRepo interface {
	Create(ctx context.Context, e *domain.WaitlistEntry) error
	GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error)
	// PendingByResource returns pending entries in creation order, oldest
	// first. That order is the promotion fairness policy.
	PendingByResource(ctx context.Context, resourceID string) ([]*domain.WaitlistEntry, error)
	PendingByOwner(ctx context.Context, ownerID string) ([]*domain.WaitlistEntry, error)
	// Cancel moves a non-terminal entry owned by ownerID to cancelled.
	// The bool reports whether a row changed; a miss does not distinguish
	// "no such entry" from "not yours".
	Cancel(ctx context.Context, entryID, ownerID string) (bool, error)
	// MarkNotified transitions pending→notified, MarkBooked notified→booked.
	// Both are guarded: a row in any other status is left untouched and the
	// call fails.
	MarkNotified(ctx context.Context, entryID string) error
	MarkBooked(ctx context.Context, entryID string) error
	// ExpireNotified moves notified entries promoted before the deadline to
	// expired and returns them.
	ExpireNotified(ctx context.Context, deadline time.Time) ([]*domain.WaitlistEntry, error)
}
