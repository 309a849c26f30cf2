package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wilbyang/reserver/internal/domain"
)

type waitlistExpirer interface {
	ExpireNotified(ctx context.Context) ([]*domain.WaitlistEntry, error)
}

// Scheduler periodically sweeps notified waitlist entries whose hold ran
// out, so an unresponsive promoted requester cannot wedge the queue.
type Scheduler struct {
	waitlist waitlistExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(
	waitlist waitlistExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		waitlist: waitlist,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.waitlist.ExpireNotified(ctx)
	if err != nil {
		s.logger.Error("failed to expire notified waitlist entries",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range expired {
		s.logger.Info("waitlist entry expired",
			logger.String("entry_id", e.ID),
			logger.String("resource_id", e.ResourceID),
			logger.String("owner_id", e.OwnerID),
		)
	}
}
