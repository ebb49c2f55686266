package invoice

import "time"

type Status string

const (
	StatusOutstanding Status = "outstanding"
	StatusPaid        Status = "paid"
	StatusVoid        Status = "void"
)

type Invoice struct {
	ID           int       `db:"id" json:"id"`
	MembershipID int       `db:"membership_id" json:"membership_id"`
	Status       Status    `db:"status" json:"status"`
	Date         time.Time `db:"date" json:"date"`
	Description  string    `db:"description" json:"description"`
	// Amount is tracked redundantly on the invoice; it is kept equal to
	// the sum of its rows by the append path.
	Amount    float64   `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	Rows []Row `json:"rows,omitempty"`
}

type Row struct {
	ID          int     `db:"id" json:"id"`
	InvoiceID   int     `db:"invoice_id" json:"invoice_id"`
	Amount      float64 `db:"amount" json:"amount"`
	Description string  `db:"description" json:"description"`
}

// NewInvoice carries everything the repository writes when an invoice is
// provisioned: the invoice, its first row, and the membership account
// refresh, applied in one transaction.
type NewInvoice struct {
	MembershipID   int
	Description    string
	Date           time.Time
	Amount         float64
	RowDescription string

	Credit    int64
	StartDate time.Time
	EndDate   time.Time
	// Reactivate forces the membership back to active, even when it was
	// cancelled. See Manager.ReactivateOnInvoice.
	Reactivate bool
}

type CreateInvoiceRequest struct {
	Membership int     `json:"membership" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

type AddRowRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
}
