package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/service/ports"
)

type WaitlistService struct {
	repo         ports.WaitlistRepo
	ledger       ports.BookingCreator
	publisher    ports.EventPublisher
	notifiedHold time.Duration
	logger       logger.Logger
}

func NewWaitlistService(
	repo ports.WaitlistRepo,
	ledger ports.BookingCreator,
	publisher ports.EventPublisher,
	notifiedHold time.Duration,
	logger logger.Logger,
) *WaitlistService {
	return &WaitlistService{
		repo:         repo,
		ledger:       ledger,
		publisher:    publisher,
		notifiedHold: notifiedHold,
		logger:       logger,
	}
}

// Enqueue appends a pending entry. There is deliberately no capacity check
// here: the waitlist records demand, availability is judged at promotion
// time.
func (s *WaitlistService) Enqueue(ctx context.Context, input domain.EnqueueWaitlistInput) (*domain.WaitlistEntry, error) {
	if !input.Preferred.Valid() {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
	}

	now := time.Now().UTC()
	e := &domain.WaitlistEntry{
		ID:         uuid.New().String(),
		ResourceID: input.ResourceID,
		OwnerID:    input.OwnerID,
		Preferred:  input.Preferred,
		Note:       input.Note,
		Status:     domain.WaitlistStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("enqueue waitlist entry: %w", err)
	}

	s.logger.Info("waitlist entry enqueued",
		logger.String("entry_id", e.ID),
		logger.String("resource_id", e.ResourceID),
		logger.String("owner_id", e.OwnerID),
	)

	return e, nil
}

func (s *WaitlistService) Cancel(ctx context.Context, entryID, ownerID string) error {
	changed, err := s.repo.Cancel(ctx, entryID, ownerID)
	if err != nil {
		return fmt.Errorf("cancel waitlist entry: %w", err)
	}
	if !changed {
		return domain.ErrEntryNotFound
	}

	s.logger.Info("waitlist entry cancelled",
		logger.String("entry_id", entryID),
		logger.String("owner_id", ownerID),
	)

	return nil
}

// Confirm turns a notified entry into a real booking through the ledger,
// under the full conflict discipline: someone else may have taken the
// window since the promotion, in which case the caller gets a conflict and
// the entry stays notified.
func (s *WaitlistService) Confirm(ctx context.Context, entryID, ownerID string) (*domain.Booking, error) {
	e, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entry: %w", err)
	}
	if e.OwnerID != ownerID {
		return nil, domain.ErrEntryNotFound
	}
	if e.Status != domain.WaitlistStatusNotified {
		return nil, domain.ErrEntryNotNotified
	}

	booking, err := s.ledger.Create(ctx, domain.CreateBookingInput{
		ResourceID: e.ResourceID,
		Interval:   e.Preferred,
		Note:       e.Note,
		OwnerID:    ownerID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkBooked(ctx, e.ID); err != nil {
		// The booking is committed; the entry will be swept to expired if
		// this keeps failing. Do not undo the booking.
		s.logger.Error("failed to mark waitlist entry booked",
			logger.String("entry_id", e.ID),
			logger.String("error", err.Error()),
		)
	}

	return booking, nil
}

func (s *WaitlistService) PendingForResource(ctx context.Context, resourceID string) ([]*domain.WaitlistEntry, error) {
	return s.repo.PendingByResource(ctx, resourceID)
}

func (s *WaitlistService) PendingForOwner(ctx context.Context, ownerID string) ([]*domain.WaitlistEntry, error) {
	return s.repo.PendingByOwner(ctx, ownerID)
}

// ExpireNotified sweeps notified entries whose hold ran out. Called
// periodically by the scheduler.
func (s *WaitlistService) ExpireNotified(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	deadline := time.Now().UTC().Add(-s.notifiedHold)

	expired, err := s.repo.ExpireNotified(ctx, deadline)
	if err != nil {
		return nil, fmt.Errorf("expire notified entries: %w", err)
	}

	for _, e := range expired {
		if err := s.publisher.PublishWaitlistExpired(ctx, e); err != nil {
			s.logger.Error("failed to publish waitlist expiry",
				logger.String("entry_id", e.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return expired, nil
}
