package checkin

import (
	"context"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

type Repository interface {
	Create(ctx context.Context, membershipID int, clubID *int) (*CheckIn, error)
	// List returns check-ins with user and club detail, newest first,
	// optionally filtered to one user.
	List(ctx context.Context, userID *int, p listing.Params) ([]CheckInWithDetails, error)
}
