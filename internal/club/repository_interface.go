package club

import (
	"context"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

type Repository interface {
	Create(ctx context.Context, name, description string) (*Club, error)
	GetByID(ctx context.Context, id int) (*Club, error)
	List(ctx context.Context, p listing.Params) ([]Club, error)
}
