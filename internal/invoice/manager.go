package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Emizy/fitness-club-manager-api/internal/logger"
	"github.com/Emizy/fitness-club-manager-api/internal/membership"
)

const (
	// CreditExchangeRate is the fixed exchange rate: 1 credit per 2
	// currency units.
	CreditExchangeRate = 2
	// ValidityDays is the length of the validity window opened by each
	// invoice.
	ValidityDays = 30
)

var (
	ErrAmountInvalid    = errors.New("invoice amount must be greater than zero")
	ErrRowAmountInvalid = errors.New("row amount must be greater than zero")
)

// ComputeCredit converts a monetary amount into membership credit at the
// fixed exchange rate, rounded down.
func ComputeCredit(amount float64) int64 {
	if amount <= 0 {
		return 0
	}
	return int64(amount / CreditExchangeRate)
}

// Manager owns the invoicing business rules: provisioning an invoice with
// its first row and refreshing the membership account in the same step.
type Manager struct {
	repo Repository

	// ReactivateOnInvoice preserves the historical behavior of invoicing
	// unconditionally forcing the membership back to active, which can
	// silently resurrect a cancelled membership. The flag exists so the
	// behavior is pinned down in one place.
	ReactivateOnInvoice bool
}

func NewManager(repo Repository, reactivateOnInvoice bool) *Manager {
	return &Manager{repo: repo, ReactivateOnInvoice: reactivateOnInvoice}
}

// CreateInvoice bills a membership: one outstanding invoice dated today with
// a single row for the current month, then a refreshed account (credit at
// the exchange rate, validity window of 30 days).
func (m *Manager) CreateInvoice(ctx context.Context, ms *membership.Membership, userName string, amount float64) (*Invoice, error) {
	if amount <= 0 {
		return nil, ErrAmountInvalid
	}

	logger.Infof("Generating new invoice for membership %d", ms.ID)

	today := time.Now()
	inv, err := m.repo.Create(ctx, NewInvoice{
		MembershipID:   ms.ID,
		Description:    fmt.Sprintf("%s membership invoice", userName),
		Date:           today,
		Amount:         amount,
		RowDescription: fmt.Sprintf("Invoice line for month of %s", today.Format("2006-01")),

		Credit:     ComputeCredit(amount),
		StartDate:  today,
		EndDate:    today.AddDate(0, 0, ValidityDays),
		Reactivate: m.ReactivateOnInvoice,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Done generating invoice %d for membership %d, credited %d", inv.ID, ms.ID, ComputeCredit(amount))
	return inv, nil
}

// AddRow appends a line to an existing invoice and bumps the invoice total
// by the row amount. Void/cancelled guards are the caller's concern.
func (m *Manager) AddRow(ctx context.Context, invoiceID int, amount float64, description string) (*Row, error) {
	if amount <= 0 {
		return nil, ErrRowAmountInvalid
	}

	row, err := m.repo.AddRow(ctx, invoiceID, amount, description)
	if err != nil {
		return nil, err
	}

	logger.Infof("Created new invoice line for invoice %d", invoiceID)
	return row, nil
}
