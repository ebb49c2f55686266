package invoice

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

var ErrNotVoidable = errors.New("invoice not found or already void")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, in NewInvoice) (*Invoice, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var inv Invoice
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO invoices (membership_id, status, date, description, amount)
		 VALUES ($1, 'outstanding', $2, $3, $4)
		 RETURNING id, membership_id, status, date, description, amount, created_at`,
		in.MembershipID, in.Date, in.Description, in.Amount,
	).StructScan(&inv)
	if err != nil {
		return nil, err
	}

	var row Row
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO invoice_rows (invoice_id, amount, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, invoice_id, amount, description`,
		inv.ID, in.Amount, in.RowDescription,
	).StructScan(&row)
	if err != nil {
		return nil, err
	}

	accountQuery := `
		UPDATE memberships
		SET amount_of_credit = $1, start_date = $2, end_date = $3, updated_at = NOW()
		WHERE id = $4
	`
	if in.Reactivate {
		accountQuery = `
		UPDATE memberships
		SET amount_of_credit = $1, start_date = $2, end_date = $3, state = 'active', updated_at = NOW()
		WHERE id = $4
	`
	}
	if _, err := tx.ExecContext(ctx, accountQuery, in.Credit, in.StartDate, in.EndDate, in.MembershipID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	inv.Rows = []Row{row}
	return &inv, nil
}

func (r *repository) AddRow(ctx context.Context, invoiceID int, amount float64, description string) (*Row, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var row Row
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO invoice_rows (invoice_id, amount, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, invoice_id, amount, description`,
		invoiceID, amount, description,
	).StructScan(&row)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE invoices SET amount = amount + $1 WHERE id = $2`,
		amount, invoiceID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Invoice, error) {
	query := `
		SELECT id, membership_id, status, date, description, amount, created_at
		FROM invoices
		WHERE id = $1
	`

	var inv Invoice
	err := r.db.GetContext(ctx, &inv, query, id)
	if err != nil {
		return nil, err
	}

	return &inv, nil
}

func (r *repository) ListRows(ctx context.Context, invoiceID int) ([]Row, error) {
	query := `
		SELECT id, invoice_id, amount, description
		FROM invoice_rows
		WHERE invoice_id = $1
		ORDER BY id ASC
	`

	var rows []Row
	err := r.db.SelectContext(ctx, &rows, query, invoiceID)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *repository) List(ctx context.Context, p listing.Params) ([]Invoice, error) {
	query := `
		SELECT id, membership_id, status, date, description, amount, created_at
		FROM invoices
	`

	query, args := p.Apply(query, nil, listing.Options{
		SearchColumns: []string{"description"},
		OrderColumns: map[string]string{
			"id":     "id",
			"date":   "date",
			"amount": "amount",
			"status": "status",
		},
		DefaultOrder: "id DESC",
	})

	var invoices []Invoice
	err := r.db.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		return nil, err
	}

	return invoices, nil
}

func (r *repository) Void(ctx context.Context, id int) error {
	query := `
		UPDATE invoices
		SET status = 'void'
		WHERE id = $1 AND status <> 'void'
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
		return ErrNotVoidable
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

func (r *repository) HasBillable(ctx context.Context, membershipID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM invoices
			WHERE membership_id = $1 AND status IN ('outstanding', 'paid')
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, membershipID)
	if err != nil {
		return false, err
	}

	return exists, nil
}
