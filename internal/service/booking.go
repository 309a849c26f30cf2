package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/interval"
	"github.com/wilbyang/reserver/internal/service/ports"
)

// capacityPromoter reacts to a freed interval on a resource. Implemented by
// PromotionService; mocked in tests.
type capacityPromoter interface {
	PromoteOnCapacityFreed(ctx context.Context, resourceID string, freed domain.Interval) ([]*domain.WaitlistEntry, error)
}

// BookingService is the booking ledger. It owns the only code paths that
// mutate booking state and the interval index, and it enforces the
// no-overlap invariant with two layers: the index pre-check under a
// per-resource lock, and the storage exclusion constraint as the final
// arbiter.
type BookingService struct {
	repo     ports.BookingRepo
	idx      *interval.Index
	locks    *resourceLocks
	promoter capacityPromoter
	logger   logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	idx *interval.Index,
	promoter capacityPromoter,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		idx:      idx,
		locks:    newResourceLocks(),
		promoter: promoter,
		logger:   logger,
	}
}

// Hydrate fills the interval index from the active bookings in storage.
// Called once at startup, before any requests are served.
func (s *BookingService) Hydrate(ctx context.Context) error {
	bookings, err := s.repo.ListAllActive(ctx)
	if err != nil {
		return fmt.Errorf("hydrate index: %w", err)
	}

	for _, b := range bookings {
		s.idx.Insert(b.ResourceID, b.ID, b.Interval)
	}

	s.logger.Info("interval index hydrated",
		logger.Int("bookings", len(bookings)),
	)

	return nil
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if !input.Interval.Valid() {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(input.ResourceID)
	defer unlock()

	if s.idx.Overlaps(input.ResourceID, input.Interval) {
		return nil, domain.ErrTimeConflict
	}

	now := time.Now().UTC()
	b := &domain.Booking{
		ID:         uuid.New().String(),
		ResourceID: input.ResourceID,
		Interval:   input.Interval,
		Note:       input.Note,
		OwnerID:    input.OwnerID,
		Status:     domain.BookingStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		// Conflicts rejected by the exclusion constraint land here and are
		// observably identical to the pre-check path above.
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.idx.Insert(b.ResourceID, b.ID, b.Interval)

	s.logger.Info("booking created",
		logger.String("booking_id", b.ID),
		logger.String("resource_id", b.ResourceID),
		logger.String("owner_id", b.OwnerID),
	)

	return b, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, ownerID string, asAdmin bool) error {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if !asAdmin && b.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	if b.Status == domain.BookingStatusCancelled {
		// Idempotent: no state change, no capacity-freed trigger.
		return nil
	}

	unlock := s.locks.lock(b.ResourceID)
	changed, err := s.repo.Cancel(ctx, bookingID)
	if err != nil {
		unlock()
		return fmt.Errorf("cancel booking: %w", err)
	}
	if changed {
		s.idx.Remove(b.ResourceID, bookingID)
	}
	unlock()

	if !changed {
		// Lost a race with a concurrent cancel of the same booking.
		return nil
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("resource_id", b.ResourceID),
		logger.String("owner_id", b.OwnerID),
	)

	// Promotion runs after the transition commits and outside the critical
	// section. A promotion failure never fails the cancellation.
	if _, err := s.promoter.PromoteOnCapacityFreed(ctx, b.ResourceID, b.Interval); err != nil {
		s.logger.Error("waitlist promotion after cancel failed",
			logger.String("resource_id", b.ResourceID),
			logger.String("error", err.Error()),
		)
	}

	return nil
}
