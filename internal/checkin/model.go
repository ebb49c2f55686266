package checkin

import "time"

// CheckIn is an immutable visit record. Club is nullable because deleting a
// club keeps its historical check-ins.
type CheckIn struct {
	ID           int       `db:"id" json:"id"`
	MembershipID int       `db:"membership_id" json:"membership_id"`
	ClubID       *int      `db:"club_id" json:"club_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CheckInWithDetails joins user and club names onto the record for listings.
type CheckInWithDetails struct {
	CheckIn
	UserID   int     `db:"user_id" json:"user_id"`
	UserName string  `db:"user_name" json:"user_name"`
	ClubName *string `db:"club_name" json:"club_name,omitempty"`
}

type CheckInRequest struct {
	User int `json:"user" binding:"required"`
	Club int `json:"club" binding:"required"`
}
