package membership

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

var ErrNotActive = errors.New("membership not found or already cancelled")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int) (*Membership, error) {
	query := `
		SELECT id, user_id, state, amount_of_credit, start_date, end_date, created_at, updated_at
		FROM memberships
		WHERE id = $1
	`

	var m Membership
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID int) (*Membership, error) {
	query := `
		SELECT id, user_id, state, amount_of_credit, start_date, end_date, created_at, updated_at
		FROM memberships
		WHERE user_id = $1
	`

	var m Membership
	err := r.db.GetContext(ctx, &m, query, userID)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) List(ctx context.Context, p listing.Params) ([]Membership, error) {
	query := `
		SELECT id, user_id, state, amount_of_credit, start_date, end_date, created_at, updated_at
		FROM memberships
	`

	query, args := p.Apply(query, nil, listing.Options{
		OrderColumns: map[string]string{
			"id":       "id",
			"state":    "state",
			"end_date": "end_date",
		},
		DefaultOrder: "id DESC",
	})

	var memberships []Membership
	err := r.db.SelectContext(ctx, &memberships, query, args...)
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

func (r *repository) Cancel(ctx context.Context, id int) error {
	query := `
		UPDATE memberships
		SET state = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND state = 'active'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotActive
	}

	return nil
}

func (r *repository) DecrementCredit(ctx context.Context, id int) (int64, error) {
	query := `
		UPDATE memberships
		SET amount_of_credit = amount_of_credit - 1, updated_at = NOW()
		WHERE id = $1
		RETURNING amount_of_credit
	`

	var balance int64
	err := r.db.GetContext(ctx, &balance, query, id)
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func (r *repository) ListExpiring(ctx context.Context, from, to time.Time) ([]ExpiringMember, error) {
	query := `
		SELECT m.id, m.end_date, u.name AS user_name, u.email AS user_email
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.state = 'active'
		  AND m.end_date IS NOT NULL
		  AND m.end_date BETWEEN $1 AND $2
		ORDER BY m.end_date ASC
	`

	var members []ExpiringMember
	err := r.db.SelectContext(ctx, &members, query, from, to)
	if err != nil {
		return nil, err
	}

	return members, nil
}
