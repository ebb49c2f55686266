package checkin

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, membershipID int, clubID *int) (*CheckIn, error) {
	var ci CheckIn
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO checkins (membership_id, club_id)
		 VALUES ($1, $2)
		 RETURNING id, membership_id, club_id, created_at`,
		membershipID, clubID,
	).StructScan(&ci)
	if err != nil {
		return nil, err
	}

	return &ci, nil
}

func (r *repository) List(ctx context.Context, userID *int, p listing.Params) ([]CheckInWithDetails, error) {
	query := `
		SELECT c.id, c.membership_id, c.club_id, c.created_at,
		       u.id AS user_id, u.name AS user_name, f.name AS club_name
		FROM checkins c
		JOIN memberships m ON m.id = c.membership_id
		JOIN users u ON u.id = m.user_id
		LEFT JOIN fitness_clubs f ON f.id = c.club_id
	`

	var args []interface{}
	hasWhere := false
	if userID != nil {
		query += ` WHERE u.id = $1`
		args = append(args, *userID)
		hasWhere = true
	}

	query, args = p.Apply(query, args, listing.Options{
		SearchColumns: []string{"u.name", "f.name"},
		OrderColumns: map[string]string{
			"id":         "c.id",
			"created_at": "c.created_at",
		},
		DefaultOrder: "c.id DESC",
		HasWhere:     hasWhere,
	})

	var checkins []CheckInWithDetails
	err := r.db.SelectContext(ctx, &checkins, query, args...)
	if err != nil {
		return nil, err
	}

	return checkins, nil
}
