package user

import (
	"time"
)

// AddOrUpdateUserRequest is the client-supplied part of a user record.
// IsActive defaults to true when omitted.
type AddOrUpdateUserRequest struct {
	UserID      string  `json:"user_id" validate:"required,max=255"`
	UserName    string  `json:"user_name" validate:"required,max=255"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	IsActive    *bool   `json:"is_active"`
}

// UserResponse is the transport representation of a stored user.
type UserResponse struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r AddOrUpdateUserRequest) active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}
