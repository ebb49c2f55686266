package user

import "github.com/Emizy/fitness-club-manager-api/internal/membership"

type User struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Email       string  `db:"email" json:"email"`
	PhoneNumber *string `db:"phone_number" json:"phone_number,omitempty"`

	// Membership is the one-to-one subscription record created with the
	// user; populated by reads, nil on inserts until attached.
	Membership *membership.Membership `db:"membership" json:"membership,omitempty"`
}

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email,max=255"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
}
