package membership

import (
	"context"
	"time"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

type Repository interface {
	GetByID(ctx context.Context, id int) (*Membership, error)
	GetByUserID(ctx context.Context, userID int) (*Membership, error)
	List(ctx context.Context, p listing.Params) ([]Membership, error)
	Cancel(ctx context.Context, id int) error
	DecrementCredit(ctx context.Context, id int) (int64, error)
	ListExpiring(ctx context.Context, from, to time.Time) ([]ExpiringMember, error)
}
