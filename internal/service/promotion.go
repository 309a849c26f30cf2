package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/interval"
	"github.com/wilbyang/reserver/internal/service/ports"
)

// PromotionService scans the waitlist when capacity frees up and notifies
// entries whose preferred window is now fully free. It only notifies;
// turning a promotion into a booking is the requester's separate, explicit
// call.
type PromotionService struct {
	waitlistRepo ports.WaitlistRepo
	idx          *interval.Index
	publisher    ports.EventPublisher
	logger       logger.Logger
}

func NewPromotionService(
	waitlistRepo ports.WaitlistRepo,
	idx *interval.Index,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *PromotionService {
	return &PromotionService{
		waitlistRepo: waitlistRepo,
		idx:          idx,
		publisher:    publisher,
		logger:       logger,
	}
}

// PromoteOnCapacityFreed evaluates pending entries in creation order,
// oldest first. Eligibility is decided against the current active bookings
// over the entry's own preferred interval, not against the freed window:
// a freed slot may satisfy an entry it only partially intersects, and
// earlier cancellations may have freed the rest. Entries are promoted
// independently; one entry's failure never aborts the scan.
func (s *PromotionService) PromoteOnCapacityFreed(ctx context.Context, resourceID string, freed domain.Interval) ([]*domain.WaitlistEntry, error) {
	pending, err := s.waitlistRepo.PendingByResource(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("list pending entries: %w", err)
	}

	var promoted []*domain.WaitlistEntry
	for _, e := range pending {
		if err := ctx.Err(); err != nil {
			return promoted, err
		}

		if s.idx.Overlaps(resourceID, e.Preferred) {
			continue
		}

		if err := s.waitlistRepo.MarkNotified(ctx, e.ID); err != nil {
			// Entry stays pending; it gets another chance on the next
			// capacity-freed trigger.
			s.logger.Error("failed to mark waitlist entry notified",
				logger.String("entry_id", e.ID),
				logger.String("resource_id", resourceID),
				logger.String("error", err.Error()),
			)
			continue
		}

		e.Status = domain.WaitlistStatusNotified
		promoted = append(promoted, e)

		if err := s.publisher.PublishWaitlistPromoted(ctx, e); err != nil {
			// The transition is already committed; the notifier event is
			// best effort.
			s.logger.Error("failed to publish waitlist promotion",
				logger.String("entry_id", e.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if len(promoted) > 0 {
		s.logger.Info("waitlist entries promoted",
			logger.String("resource_id", resourceID),
			logger.String("freed_start", freed.Start.String()),
			logger.String("freed_end", freed.End.String()),
			logger.Int("count", len(promoted)),
		)
	}

	return promoted, nil
}
