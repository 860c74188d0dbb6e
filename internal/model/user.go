package model

import "time"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User represents a user in the system
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	BakeryName   string    `json:"bakery_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest is the credentials payload for POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserRequest is used for open registration. Role is not part of
// the payload; new accounts always start as ROLE_USER.
type RegisterUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=4"`
	BakeryName string `json:"bakery_name"`
}

// UpdateUserRequest is the admin-side user update. Pointers allow partial updates.
type UpdateUserRequest struct {
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Password   *string `json:"password,omitempty" binding:"omitempty,min=4"`
	Role       *string `json:"role,omitempty" binding:"omitempty,oneof=ROLE_USER ROLE_ADMIN"`
	BakeryName *string `json:"bakery_name,omitempty"`
}

// UpdateProfileRequest is the self-service update. Unlike UpdateUserRequest
// it carries no role field, so a user cannot elevate themselves.
type UpdateProfileRequest struct {
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Password   *string `json:"password,omitempty" binding:"omitempty,min=4"`
	BakeryName *string `json:"bakery_name,omitempty"`
}
