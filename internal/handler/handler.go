package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/handler/dto"
	"github.com/wilbyang/reserver/internal/middleware"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, ownerID string, asAdmin bool) error
}

type AvailabilitySvc interface {
	Busy(ctx context.Context, resourceID string, window domain.Interval) ([]domain.Interval, error)
	Bookings(ctx context.Context, resourceID string, window domain.Interval) ([]*domain.Booking, error)
	OwnerBookings(ctx context.Context, ownerID string) ([]*domain.Booking, error)
}

type WaitlistSvc interface {
	Enqueue(ctx context.Context, input domain.EnqueueWaitlistInput) (*domain.WaitlistEntry, error)
	Cancel(ctx context.Context, entryID, ownerID string) error
	Confirm(ctx context.Context, entryID, ownerID string) (*domain.Booking, error)
	PendingForResource(ctx context.Context, resourceID string) ([]*domain.WaitlistEntry, error)
	PendingForOwner(ctx context.Context, ownerID string) ([]*domain.WaitlistEntry, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type Handler struct {
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	waitlistService     WaitlistSvc
	userService         UserSvc
}

func NewHandler(
	bookingService BookingSvc,
	availabilityService AvailabilitySvc,
	waitlistService WaitlistSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
		waitlistService:     waitlistService,
		userService:         userService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	iv, ok := parseInterval(c, req.Start, req.End)
	if !ok {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		ResourceID: req.ResourceID,
		Interval:   iv,
		Note:       req.Note,
		OwnerID:    c.GetString(middleware.CtxOwnerID),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	err := h.bookingService.Cancel(
		c.Request.Context(), id,
		c.GetString(middleware.CtxOwnerID),
		c.GetBool(middleware.CtxIsAdmin),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings, err := h.availabilityService.OwnerBookings(c.Request.Context(), c.GetString(middleware.CtxOwnerID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListResourceBookings(c *ginext.Context) {
	window, ok := parseWindow(c)
	if !ok {
		return
	}

	bookings, err := h.availabilityService.Bookings(c.Request.Context(), c.Param("id"), window)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	window, ok := parseWindow(c)
	if !ok {
		return
	}

	busy, err := h.availabilityService.Busy(c.Request.Context(), c.Param("id"), window)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.IntervalResponse, 0, len(busy))
	for _, iv := range busy {
		resp = append(resp, dto.ToIntervalResponse(iv))
	}

	c.JSON(http.StatusOK, resp)
}

// Waitlist

func (h *Handler) EnqueueWaitlist(c *ginext.Context) {
	var req dto.EnqueueWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	iv, ok := parseInterval(c, req.PreferredStart, req.PreferredEnd)
	if !ok {
		return
	}

	entry, err := h.waitlistService.Enqueue(c.Request.Context(), domain.EnqueueWaitlistInput{
		ResourceID: req.ResourceID,
		OwnerID:    c.GetString(middleware.CtxOwnerID),
		Preferred:  iv,
		Note:       req.Note,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) CancelWaitlistEntry(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry id"})
		return
	}

	if err := h.waitlistService.Cancel(c.Request.Context(), id, c.GetString(middleware.CtxOwnerID)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ConfirmWaitlistEntry(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry id"})
		return
	}

	booking, err := h.waitlistService.Confirm(c.Request.Context(), id, c.GetString(middleware.CtxOwnerID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListResourceWaitlist(c *ginext.Context) {
	entries, err := h.waitlistService.PendingForResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEntryResponses(entries))
}

func (h *Handler) ListMyWaitlist(c *ginext.Context) {
	entries, err := h.waitlistService.PendingForOwner(c.Request.Context(), c.GetString(middleware.CtxOwnerID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEntryResponses(entries))
}

func toEntryResponses(entries []*domain.WaitlistEntry) []dto.WaitlistEntryResponse {
	resp := make([]dto.WaitlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToWaitlistEntryResponse(e))
	}
	return resp
}

// parseInterval parses an RFC3339 pair from a request body. Range
// validation (start < end) stays with the services; this only rejects
// unparseable timestamps.
func parseInterval(c *ginext.Context, start, end string) (domain.Interval, bool) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start, expected RFC3339"})
		return domain.Interval{}, false
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end, expected RFC3339"})
		return domain.Interval{}, false
	}
	return domain.NewInterval(s, e), true
}

// parseWindow reads the optional from/to query pair. Both or neither must
// be present.
func parseWindow(c *ginext.Context) (domain.Interval, bool) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" && to == "" {
		return domain.Interval{}, true
	}
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "from and to must be provided together"})
		return domain.Interval{}, false
	}

	iv, ok := parseInterval(c, from, to)
	if !ok {
		return domain.Interval{}, false
	}
	if !iv.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "from must be before to"})
		return domain.Interval{}, false
	}
	return iv, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTimeConflict),
		errors.Is(err, domain.ErrEntryNotNotified),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage unavailable, retry later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
