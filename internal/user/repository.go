package user

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
	"github.com/Emizy/fitness-club-manager-api/internal/membership"
)

const userWithMembershipQuery = `
	SELECT u.id, u.name, u.email, u.phone_number,
	       m.id AS "membership.id",
	       m.user_id AS "membership.user_id",
	       m.state AS "membership.state",
	       m.amount_of_credit AS "membership.amount_of_credit",
	       m.start_date AS "membership.start_date",
	       m.end_date AS "membership.end_date",
	       m.created_at AS "membership.created_at",
	       m.updated_at AS "membership.updated_at"
	FROM users u
	JOIN memberships m ON m.user_id = u.id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email string, phoneNumber *string) (*User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var u User
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO users (name, email, phone_number)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, phone_number`,
		name, email, phoneNumber,
	).StructScan(&u)
	if err != nil {
		return nil, err
	}

	var m membership.Membership
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO memberships (user_id)
		 VALUES ($1)
		 RETURNING id, user_id, state, amount_of_credit, start_date, end_date, created_at, updated_at`,
		u.ID,
	).StructScan(&m)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	u.Membership = &m
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	query := userWithMembershipQuery + ` WHERE u.id = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) List(ctx context.Context, p listing.Params) ([]User, error) {
	query, args := p.Apply(userWithMembershipQuery, nil, listing.Options{
		SearchColumns: []string{"u.name", "u.email"},
		OrderColumns: map[string]string{
			"id":    "u.id",
			"name":  "u.name",
			"email": "u.email",
		},
		DefaultOrder: "u.id DESC",
	})

	var users []User
	err := r.db.SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, err
	}

	return users, nil
}
