package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrEntryNotFound   = errors.New("waitlist entry not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	// ErrInvalidRange marks a malformed interval (end <= start).
	ErrInvalidRange = errors.New("invalid time range")
	// ErrTimeConflict marks an overlap with an existing active booking,
	// whether caught by the in-memory index or by the storage exclusion
	// constraint. Retryable with a different window, never as-is.
	ErrTimeConflict = errors.New("time range conflicts with an existing booking")
	// ErrEntryNotNotified rejects confirming a waitlist entry that has not
	// been promoted yet (or is already terminal).
	ErrEntryNotNotified = errors.New("waitlist entry is not in notified status")
)

var (
	ErrForbidden          = errors.New("operation not permitted for this owner")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrValidation = errors.New("validation error")
	// ErrStorageUnavailable wraps persistence failures. No partial state
	// mutation occurs on this path, so the whole operation is safe to retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
