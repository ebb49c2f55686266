package invoice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Emizy/fitness-club-manager-api/internal/email"
	"github.com/Emizy/fitness-club-manager-api/internal/listing"
	"github.com/Emizy/fitness-club-manager-api/internal/logger"
	"github.com/Emizy/fitness-club-manager-api/internal/membership"
	"github.com/Emizy/fitness-club-manager-api/internal/metrics"
	"github.com/Emizy/fitness-club-manager-api/internal/user"
)

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrAlreadyVoid         = errors.New("invoice already void")
	ErrMembershipCancelled = errors.New("membership has already been cancelled")
)

type Service interface {
	Create(ctx context.Context, membershipID int, amount float64) (*Invoice, error)
	AddRow(ctx context.Context, invoiceID int, amount float64, description string) (*Row, error)
	Void(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Invoice, error)
	List(ctx context.Context, p listing.Params) ([]Invoice, error)
}

type service struct {
	invoices    Repository
	memberships membership.Repository
	users       user.Repository
	manager     *Manager
	mailer      *email.Service
}

// NewService wires the administrative invoice operations. mailer may be
// nil; receipts are skipped then.
func NewService(
	invoices Repository,
	memberships membership.Repository,
	users user.Repository,
	manager *Manager,
	mailer *email.Service,
) Service {
	return &service{
		invoices:    invoices,
		memberships: memberships,
		users:       users,
		manager:     manager,
		mailer:      mailer,
	}
}

func (s *service) Create(ctx context.Context, membershipID int, amount float64) (*Invoice, error) {
	ms, err := s.memberships.GetByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, membership.ErrMembershipNotFound
		}
		return nil, err
	}

	if ms.State == membership.StateCancelled {
		return nil, ErrMembershipCancelled
	}

	u, err := s.users.FindByID(ctx, ms.UserID)
	if err != nil {
		return nil, err
	}

	inv, err := s.manager.CreateInvoice(ctx, ms, u.Name, amount)
	if err != nil {
		return nil, err
	}

	metrics.RecordInvoiceCreated("manual")

	if s.mailer != nil {
		if err := s.mailer.SendInvoiceReceipt(ctx, u.Email, u.Name, inv.Amount, inv.Date.AddDate(0, 0, ValidityDays)); err != nil {
			logger.Errorf("Failed to queue invoice receipt for %s: %v", u.Email, err)
		}
	}

	return inv, nil
}

func (s *service) AddRow(ctx context.Context, invoiceID int, amount float64, description string) (*Row, error) {
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if inv.Status == StatusVoid {
		return nil, ErrAlreadyVoid
	}

	ms, err := s.memberships.GetByID(ctx, inv.MembershipID)
	if err != nil {
		return nil, err
	}
	if ms.State == membership.StateCancelled {
		return nil, ErrMembershipCancelled
	}

	row, err := s.manager.AddRow(ctx, invoiceID, amount, description)
	if err != nil {
		return nil, err
	}

	metrics.RecordInvoiceRowAdded()
	return row, nil
}

func (s *service) Void(ctx context.Context, id int) error {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvoiceNotFound
		}
		return err
	}

	if inv.Status == StatusVoid {
		return ErrAlreadyVoid
	}

	// Voiding does not claw back credit already granted; there is no
	// compensating transaction.
	if err := s.invoices.Void(ctx, id); err != nil {
		if errors.Is(err, ErrNotVoidable) {
			return ErrAlreadyVoid
		}
		return err
	}

	metrics.RecordInvoiceVoided()
	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if _, err := s.invoices.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvoiceNotFound
		}
		return err
	}

	return s.invoices.Delete(ctx, id)
}

func (s *service) Get(ctx context.Context, id int) (*Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	rows, err := s.invoices.ListRows(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Rows = rows

	return inv, nil
}

func (s *service) List(ctx context.Context, p listing.Params) ([]Invoice, error) {
	return s.invoices.List(ctx, p)
}
