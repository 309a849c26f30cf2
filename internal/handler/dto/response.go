package dto

import (
	"time"

	"github.com/wilbyang/reserver/internal/domain"
)

type BookingResponse struct {
	ID         string `json:"id"`
	ResourceID string `json:"resource_id"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Note       string `json:"note,omitempty"`
	OwnerID    string `json:"owner_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WaitlistEntryResponse struct {
	ID             string `json:"id"`
	ResourceID     string `json:"resource_id"`
	OwnerID        string `json:"owner_id"`
	PreferredStart string `json:"preferred_start"`
	PreferredEnd   string `json:"preferred_end"`
	Note           string `json:"note,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		Start:      b.Interval.Start.Format(time.RFC3339),
		End:        b.Interval.End.Format(time.RFC3339),
		Note:       b.Note,
		OwnerID:    b.OwnerID,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToIntervalResponse(iv domain.Interval) IntervalResponse {
	return IntervalResponse{
		Start: iv.Start.Format(time.RFC3339),
		End:   iv.End.Format(time.RFC3339),
	}
}

func ToWaitlistEntryResponse(e *domain.WaitlistEntry) WaitlistEntryResponse {
	return WaitlistEntryResponse{
		ID:             e.ID,
		ResourceID:     e.ResourceID,
		OwnerID:        e.OwnerID,
		PreferredStart: e.Preferred.Start.Format(time.RFC3339),
		PreferredEnd:   e.Preferred.End.Format(time.RFC3339),
		Note:           e.Note,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
