package invoice

import (
	"context"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

type Repository interface {
	// Create writes the invoice, its first row and the membership account
	// refresh in one transaction.
	Create(ctx context.Context, in NewInvoice) (*Invoice, error)
	// AddRow appends a row and bumps the invoice amount by the row amount
	// in one transaction.
	AddRow(ctx context.Context, invoiceID int, amount float64, description string) (*Row, error)
	GetByID(ctx context.Context, id int) (*Invoice, error)
	ListRows(ctx context.Context, invoiceID int) ([]Row, error)
	List(ctx context.Context, p listing.Params) ([]Invoice, error)
	Void(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	// HasBillable reports whether the membership has an outstanding or
	// paid invoice, i.e. whether it has left the unbilled state.
	HasBillable(ctx context.Context, membershipID int) (bool, error)
}
