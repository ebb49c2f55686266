package club

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

func (r *repository) Create(ctx context.Context, name, description string) (*Club, error) {
	query := `
		INSERT INTO fitness_clubs (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`

	var c Club
	err := r.db.GetContext(ctx, &c, query, name, description)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Club, error) {
	query := `
		SELECT id, name, description, created_at
		FROM fitness_clubs
		WHERE id = $1
	`

	var c Club
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) List(ctx context.Context, p listing.Params) ([]Club, error) {
	query := `
		SELECT id, name, description, created_at
		FROM fitness_clubs
	`

	query, args := p.Apply(query, nil, listing.Options{
		SearchColumns: []string{"name", "description"},
		OrderColumns: map[string]string{
			"id":   "id",
			"name": "name",
		},
		DefaultOrder: "id DESC",
	})

	var clubs []Club
	err := r.db.SelectContext(ctx, &clubs, query, args...)
	if err != nil {
		return nil, err
	}

	return clubs, nil
}
