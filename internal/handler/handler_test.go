package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/handler/dto"
	hmocks "github.com/wilbyang/reserver/internal/handler/mocks"
	"github.com/wilbyang/reserver/internal/middleware"
)

const testOwnerID = "11111111-1111-1111-1111-111111111111"

// identity stands in for the auth middleware: every request arrives as
// testOwnerID, non-admin.
func identity(c *ginext.Context) {
	c.Set(middleware.CtxOwnerID, testOwnerID)
	c.Set(middleware.CtxIsAdmin, false)
	c.Next()
}

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockAvailabilitySvc, *hmocks.MockWaitlistSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	waitlistSvc := hmocks.NewMockWaitlistSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(bookingSvc, availabilitySvc, waitlistSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/resources/:id/bookings", h.ListResourceBookings)
		api.GET("/resources/:id/availability", h.GetAvailability)
		api.GET("/resources/:id/waitlist", h.ListResourceWaitlist)

		authed := api.Group("")
		authed.Use(identity)
		{
			authed.POST("/bookings", h.CreateBooking)
			authed.DELETE("/bookings/:id", h.CancelBooking)
			authed.GET("/bookings", h.ListMyBookings)
			authed.POST("/waitlist", h.EnqueueWaitlist)
			authed.DELETE("/waitlist/:id", h.CancelWaitlistEntry)
			authed.POST("/waitlist/:id/confirm", h.ConfirmWaitlistEntry)
			authed.GET("/waitlist", h.ListMyWaitlist)
		}
	}

	return bookingSvc, availabilitySvc, waitlistSvc, userSvc, r
}

func testBooking(id string) *domain.Booking {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:         id,
		ResourceID: "room-1",
		Interval:   domain.NewInterval(day.Add(10*time.Hour), day.Add(12*time.Hour)),
		OwnerID:    testOwnerID,
		Status:     domain.BookingStatusActive,
		CreatedAt:  day,
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	booking := testBooking(uuid.New().String())
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ResourceID: "room-1",
		Start:      "2026-03-14T10:00:00Z",
		End:        "2026-03-14T12:00:00Z",
		Note:       "standup",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "room-1", resp.ResourceID)
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"resource_id":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidTimestamp(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"resource_id":"room-1","start":"not-a-time","end":"2026-03-14T12:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrTimeConflict)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ResourceID: "room-1",
		Start:      "2026-03-14T10:00:00Z",
		End:        "2026-03-14T12:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_InvalidRange(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidRange)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ResourceID: "room-1",
		Start:      "2026-03-14T12:00:00Z",
		End:        "2026-03-14T10:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, testOwnerID, false).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, testOwnerID, false).Return(domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, testOwnerID, false).Return(domain.ErrForbidden)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListMyBookings_Success(t *testing.T) {
	_, availabilitySvc, _, _, r := setupRouter(t)

	bookings := []*domain.Booking{testBooking("b1")}
	availabilitySvc.EXPECT().OwnerBookings(mock.Anything, testOwnerID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	_, availabilitySvc, _, _, r := setupRouter(t)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	busy := []domain.Interval{
		domain.NewInterval(day.Add(10*time.Hour), day.Add(12*time.Hour)),
	}
	availabilitySvc.EXPECT().Busy(mock.Anything, "room-1", mock.Anything).Return(busy, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/room-1/availability?from=2026-03-14T00:00:00Z&to=2026-03-15T00:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.IntervalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2026-03-14T10:00:00Z", resp[0].Start)
}

func TestHandler_GetAvailability_NoWindow(t *testing.T) {
	_, availabilitySvc, _, _, r := setupRouter(t)

	availabilitySvc.EXPECT().Busy(mock.Anything, "room-1", domain.Interval{}).Return([]domain.Interval{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/room-1/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetAvailability_HalfWindow(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/room-1/availability?from=2026-03-14T00:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_BackwardsWindow(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/room-1/availability?from=2026-03-15T00:00:00Z&to=2026-03-14T00:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListResourceBookings_Success(t *testing.T) {
	_, availabilitySvc, _, _, r := setupRouter(t)

	bookings := []*domain.Booking{testBooking("b1"), testBooking("b2")}
	availabilitySvc.EXPECT().Bookings(mock.Anything, "room-1", mock.Anything).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/room-1/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListResourceBookings_StorageDown(t *testing.T) {
	_, availabilitySvc, _, _, r := setupRouter(t)

	availabilitySvc.EXPECT().Bookings(mock.Anything, "room-1", mock.Anything).Return(nil, domain.ErrStorageUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/room-1/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// --- Waitlist ---

func TestHandler_EnqueueWaitlist_Success(t *testing.T) {
	_, _, waitlistSvc, _, r := setupRouter(t)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	entry := &domain.WaitlistEntry{
		ID:         uuid.New().String(),
		ResourceID: "room-1",
		OwnerID:    testOwnerID,
		Preferred:  domain.NewInterval(day.Add(10*time.Hour), day.Add(12*time.Hour)),
		Status:     domain.WaitlistStatusPending,
		CreatedAt:  day,
	}
	waitlistSvc.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(entry, nil)

	body, _ := json.Marshal(dto.EnqueueWaitlistRequest{
		ResourceID:     "room-1",
		PreferredStart: "2026-03-14T10:00:00Z",
		PreferredEnd:   "2026-03-14T12:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.WaitlistEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CancelWaitlistEntry_NotFound(t *testing.T) {
	_, _, waitlistSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	waitlistSvc.EXPECT().Cancel(mock.Anything, id, testOwnerID).Return(domain.ErrEntryNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/waitlist/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ConfirmWaitlistEntry_Success(t *testing.T) {
	_, _, waitlistSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	booking := testBooking(uuid.New().String())
	waitlistSvc.EXPECT().Confirm(mock.Anything, id, testOwnerID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist/"+id+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
}

func TestHandler_ConfirmWaitlistEntry_NotNotified(t *testing.T) {
	_, _, waitlistSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	waitlistSvc.EXPECT().Confirm(mock.Anything, id, testOwnerID).Return(nil, domain.ErrEntryNotNotified)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist/"+id+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListResourceWaitlist_Success(t *testing.T) {
	_, _, waitlistSvc, _, r := setupRouter(t)

	entries := []*domain.WaitlistEntry{
		{ID: "w1", ResourceID: "room-1", OwnerID: "u1", Status: domain.WaitlistStatusPending},
	}
	waitlistSvc.EXPECT().PendingForResource(mock.Anything, "room-1").Return(entries, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/room-1/waitlist", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.WaitlistEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     "alice@example.com",
		Role:      domain.UserRoleRegular,
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestHandler_Register_ShortPassword(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"email":"alice@example.com","password":"short"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "correct-horse",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Login(mock.Anything, "alice@example.com", "correct-horse").Return("signed.jwt.token", nil)

	body, _ := json.Marshal(dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Login(mock.Anything, "alice@example.com", "wrong-password").Return("", domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, availabilitySvc, _, _, r := setupRouter(t)

	availabilitySvc.EXPECT().Busy(mock.Anything, "room-1", mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/room-1/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
