package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin regular"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateBookingRequest struct {
	ResourceID string `json:"resource_id" binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end" binding:"required"`
	Note       string `json:"note"`
}

type EnqueueWaitlistRequest struct {
	ResourceID     string `json:"resource_id" binding:"required"`
	PreferredStart string `json:"preferred_start" binding:"required"`
	PreferredEnd   string `json:"preferred_end" binding:"required"`
	Note           string `json:"note"`
}
