package service

import (
	"context"
	"fmt"

	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/service/ports"
)

// AvailabilityService is the read-only projection over active bookings.
// It goes to storage rather than the in-memory index so reads reflect
// committed state even right after a restart mid-hydration.
type AvailabilityService struct {
	repo ports.BookingRepo
}

func NewAvailabilityService(repo ports.BookingRepo) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

// Busy returns the active intervals of the resource intersecting the
// window, sorted by start ascending.
func (s *AvailabilityService) Busy(ctx context.Context, resourceID string, window domain.Interval) ([]domain.Interval, error) {
	bookings, err := s.repo.ListActive(ctx, resourceID, window)
	if err != nil {
		return nil, fmt.Errorf("query busy intervals: %w", err)
	}

	busy := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, b.Interval)
	}

	return busy, nil
}

// Bookings is the same projection at booking granularity.
func (s *AvailabilityService) Bookings(ctx context.Context, resourceID string, window domain.Interval) ([]*domain.Booking, error) {
	return s.repo.ListActive(ctx, resourceID, window)
}

func (s *AvailabilityService) OwnerBookings(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
