package domain

import "time"

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleRegular UserRole = "regular"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterUserInput struct {
	Email    string
	Password string
	Role     UserRole
}
