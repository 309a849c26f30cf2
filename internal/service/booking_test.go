package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/interval"
	smocks "github.com/wilbyang/reserver/internal/service/mocks"
	"github.com/wilbyang/reserver/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testInterval(startHour, endHour int) domain.Interval {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return domain.NewInterval(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour))
}

func TestBookingService_Create_Success(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()
	log := newTestLogger(t)

	svc := NewBookingService(repo, idx, promoter, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), domain.CreateBookingInput{
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		Note:       "standup",
		OwnerID:    "u1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "room-1", b.ResourceID)
	assert.Equal(t, "u1", b.OwnerID)
	assert.Equal(t, domain.BookingStatusActive, b.Status)
	assert.Equal(t, 1, idx.Len("room-1"), "created booking lands in the index")
}

func TestBookingService_Create_InvalidRange(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	svc := NewBookingService(repo, interval.NewIndex(), promoter, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		ResourceID: "room-1",
		Interval:   testInterval(12, 10),
		OwnerID:    "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestBookingService_Create_ConflictFromIndex(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()
	idx.Insert("room-1", "existing", testInterval(10, 12))

	svc := NewBookingService(repo, idx, promoter, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		ResourceID: "room-1",
		Interval:   testInterval(11, 13),
		OwnerID:    "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeConflict)
}

func TestBookingService_Create_BackToBackAllowed(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()
	idx.Insert("room-1", "existing", testInterval(10, 12))

	svc := NewBookingService(repo, idx, promoter, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), domain.CreateBookingInput{
		ResourceID: "room-1",
		Interval:   testInterval(12, 14),
		OwnerID:    "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, b.Status)
}

func TestBookingService_Create_ConflictFromStorage(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()

	svc := NewBookingService(repo, idx, promoter, newTestLogger(t))

	// The index missed it (another instance committed first); the exclusion
	// constraint catches it.
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrTimeConflict)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		OwnerID:    "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeConflict)
	assert.Equal(t, 0, idx.Len("room-1"), "rejected booking never enters the index")
}

func TestBookingService_Create_ConcurrentSameSlot(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()

	svc := NewBookingService(repo, idx, promoter, newTestLogger(t))

	// Only the winner reaches storage; the loser is rejected by the index
	// inside the same critical section.
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				ResourceID: "room-1",
				Interval:   testInterval(10, 12),
				OwnerID:    "u1",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflict int
	for err := range results {
		switch {
		case err == nil:
			ok++
		default:
			assert.ErrorIs(t, err, domain.ErrTimeConflict)
			conflict++
		}
	}

	assert.Equal(t, 1, ok, "exactly one create wins")
	assert.Equal(t, 1, conflict)
	assert.Equal(t, 1, idx.Len("room-1"))
}

func TestBookingService_Cancel_Success(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()
	idx.Insert("room-1", "b1", testInterval(10, 12))

	svc := NewBookingService(repo, idx, promoter, newTestLogger(t))

	b := &domain.Booking{
		ID:         "b1",
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		OwnerID:    "u1",
		Status:     domain.BookingStatusActive,
	}

	repo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	repo.EXPECT().Cancel(mock.Anything, "b1").Return(true, nil)
	promoter.EXPECT().PromoteOnCapacityFreed(mock.Anything, "room-1", testInterval(10, 12)).Return(nil, nil)

	err := svc.Cancel(context.Background(), "b1", "u1", false)

	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len("room-1"), "cancelled booking leaves the index")
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	svc := NewBookingService(repo, interval.NewIndex(), promoter, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing", "u1", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	svc := NewBookingService(repo, interval.NewIndex(), promoter, newTestLogger(t))

	b := &domain.Booking{
		ID:         "b1",
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		OwnerID:    "u1",
		Status:     domain.BookingStatusActive,
	}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	err := svc.Cancel(context.Background(), "b1", "u2", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_AdminOverride(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()
	idx.Insert("room-1", "b1", testInterval(10, 12))

	svc := NewBookingService(repo, idx, promoter, newTestLogger(t))

	b := &domain.Booking{
		ID:         "b1",
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		OwnerID:    "u1",
		Status:     domain.BookingStatusActive,
	}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	repo.EXPECT().Cancel(mock.Anything, "b1").Return(true, nil)
	promoter.EXPECT().PromoteOnCapacityFreed(mock.Anything, "room-1", mock.Anything).Return(nil, nil)

	err := svc.Cancel(context.Background(), "b1", "admin-user", true)

	require.NoError(t, err)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	svc := NewBookingService(repo, interval.NewIndex(), promoter, newTestLogger(t))

	b := &domain.Booking{
		ID:         "b1",
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		OwnerID:    "u1",
		Status:     domain.BookingStatusCancelled,
	}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	// No repo.Cancel, no promotion: the second cancel is a no-op.
	err := svc.Cancel(context.Background(), "b1", "u1", false)

	require.NoError(t, err)
}

func TestBookingService_Cancel_LostRace(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	svc := NewBookingService(repo, interval.NewIndex(), promoter, newTestLogger(t))

	b := &domain.Booking{
		ID:         "b1",
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		OwnerID:    "u1",
		Status:     domain.BookingStatusActive,
	}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	repo.EXPECT().Cancel(mock.Anything, "b1").Return(false, nil)

	// A concurrent cancel got there first; still success, no promotion.
	err := svc.Cancel(context.Background(), "b1", "u1", false)

	require.NoError(t, err)
}

func TestBookingService_Cancel_PromotionFailureIgnored(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()
	idx.Insert("room-1", "b1", testInterval(10, 12))

	svc := NewBookingService(repo, idx, promoter, newTestLogger(t))

	b := &domain.Booking{
		ID:         "b1",
		ResourceID: "room-1",
		Interval:   testInterval(10, 12),
		OwnerID:    "u1",
		Status:     domain.BookingStatusActive,
	}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	repo.EXPECT().Cancel(mock.Anything, "b1").Return(true, nil)
	promoter.EXPECT().PromoteOnCapacityFreed(mock.Anything, "room-1", mock.Anything).Return(nil, assert.AnError)

	err := svc.Cancel(context.Background(), "b1", "u1", false)

	require.NoError(t, err, "promotion failure never fails the cancellation")
}

func TestBookingService_Hydrate(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	idx := interval.NewIndex()

	svc := NewBookingService(repo, idx, promoter, newTestLogger(t))

	active := []*domain.Booking{
		{ID: "b1", ResourceID: "room-1", Interval: testInterval(10, 12)},
		{ID: "b2", ResourceID: "room-1", Interval: testInterval(14, 16)},
		{ID: "b3", ResourceID: "room-2", Interval: testInterval(10, 12)},
	}
	repo.EXPECT().ListAllActive(mock.Anything).Return(active, nil)

	require.NoError(t, svc.Hydrate(context.Background()))

	assert.Equal(t, 2, idx.Len("room-1"))
	assert.Equal(t, 1, idx.Len("room-2"))
	assert.True(t, idx.Overlaps("room-1", testInterval(11, 13)))
}

func TestBookingService_Hydrate_RepoError(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	promoter := smocks.NewMockCapacityPromoter(t)
	svc := NewBookingService(repo, interval.NewIndex(), promoter, newTestLogger(t))

	repo.EXPECT().ListAllActive(mock.Anything).Return(nil, assert.AnError)

	require.Error(t, svc.Hydrate(context.Background()))
}
