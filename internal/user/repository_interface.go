package user

import (
	"context"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

type Repository interface {
	// Create inserts the user and its membership in one transaction.
	Create(ctx context.Context, name, email string, phoneNumber *string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, p listing.Params) ([]User, error)
}
