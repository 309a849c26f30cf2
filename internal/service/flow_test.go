package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/interval"
	"github.com/wilbyang/reserver/internal/service/ports/mocks"
)

// Exercises the full cancel -> promote -> confirm chain with the real
// services sharing one index, storage mocked out.
func TestCancelPromoteConfirmFlow(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	waitlistRepo := mocks.NewMockWaitlistRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	idx := interval.NewIndex()
	log := newTestLogger(t)

	promotionSvc := NewPromotionService(waitlistRepo, idx, publisher, log)
	bookingSvc := NewBookingService(bookingRepo, idx, promotionSvc, log)
	waitlistSvc := NewWaitlistService(waitlistRepo, bookingSvc, publisher, 24*time.Hour, log)

	// room-1 morning and early afternoon are taken.
	b1 := &domain.Booking{
		ID:         "b1",
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		OwnerID:    "u0",
		Status:     domain.BookingStatusActive,
	}
	idx.Insert("room-1", "b1", b1.Interval)
	idx.Insert("room-1", "b2", testInterval(12, 14))

	// Three people queued up: w1 wants exactly the slot b1 holds, w2 wants
	// an afternoon slot still blocked by b2, w3 overlaps w1's wish.
	w1 := &domain.WaitlistEntry{ID: "w1", ResourceID: "room-1", OwnerID: "u1", Preferred: testInterval(10, 12), Status: domain.WaitlistStatusPending}
	w2 := &domain.WaitlistEntry{ID: "w2", ResourceID: "room-1", OwnerID: "u2", Preferred: testInterval(13, 15), Status: domain.WaitlistStatusPending}
	w3 := &domain.WaitlistEntry{ID: "w3", ResourceID: "room-1", OwnerID: "u3", Preferred: testInterval(9, 11), Status: domain.WaitlistStatusPending}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b1, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(true, nil)
	waitlistRepo.EXPECT().PendingByResource(mock.Anything, "room-1").Return([]*domain.WaitlistEntry{w1, w2, w3}, nil)
	waitlistRepo.EXPECT().MarkNotified(mock.Anything, "w1").Return(nil)
	waitlistRepo.EXPECT().MarkNotified(mock.Anything, "w3").Return(nil)
	publisher.EXPECT().PublishWaitlistPromoted(mock.Anything, w1).Return(nil)
	publisher.EXPECT().PublishWaitlistPromoted(mock.Anything, w3).Return(nil)

	// u0 cancels: w1 and w3 get notified, w2 stays blocked by b2.
	require.NoError(t, bookingSvc.Cancel(context.Background(), "b1", "u0", false))
	assert.Equal(t, domain.WaitlistStatusNotified, w1.Status)
	assert.Equal(t, domain.WaitlistStatusPending, w2.Status)
	assert.Equal(t, domain.WaitlistStatusNotified, w3.Status)

	// w1 confirms first and gets the slot.
	waitlistRepo.EXPECT().GetByID(mock.Anything, "w1").Return(w1, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	waitlistRepo.EXPECT().MarkBooked(mock.Anything, "w1").Return(nil)

	booked, err := waitlistSvc.Confirm(context.Background(), "w1", "u1")
	require.NoError(t, err)
	assert.Equal(t, testInterval(10, 12), booked.Interval)

	// w3 was notified too, but w1 moved first; the confirm discipline
	// catches the collision.
	waitlistRepo.EXPECT().GetByID(mock.Anything, "w3").Return(w3, nil)

	_, err = waitlistSvc.Confirm(context.Background(), "w3", "u3")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeConflict)
}
