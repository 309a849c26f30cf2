package ports

import (
	"context"

	"github.com/wilbyang/reserver/internal/domain"
)

// EventPublisher hands waitlist lifecycle events to the external notifier.
// Delivery to end users is out of scope here; publishing the event is the
// boundary. Publishers are called only after the state transition commits.
type EventPublisher interface {
	PublishWaitlistPromoted(ctx context.Context, e *domain.WaitlistEntry) error
	PublishWaitlistExpired(ctx context.Context, e *domain.WaitlistEntry) error
}
