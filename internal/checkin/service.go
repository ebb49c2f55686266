package checkin

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Emizy/fitness-club-manager-api/internal/club"
	"github.com/Emizy/fitness-club-manager-api/internal/invoice"
	"github.com/Emizy/fitness-club-manager-api/internal/listing"
	"github.com/Emizy/fitness-club-manager-api/internal/logger"
	"github.com/Emizy/fitness-club-manager-api/internal/membership"
	"github.com/Emizy/fitness-club-manager-api/internal/metrics"
	"github.com/Emizy/fitness-club-manager-api/internal/user"
)

var (
	ErrMembershipCancelled = errors.New("membership is already cancelled")
	ErrNoCredit            = errors.New("membership has no credit left")
	ErrExpired             = errors.New("membership expired")
)

type Service interface {
	CheckIn(ctx context.Context, userID, clubID int) (*CheckIn, error)
	List(ctx context.Context, userID *int, p listing.Params) ([]CheckInWithDetails, error)
}

type service struct {
	checkins    Repository
	users       user.Repository
	clubs       club.Repository
	memberships membership.Repository
	invoices    invoice.Repository
	manager     *invoice.Manager
	charge      float64
}

// NewService wires the check-in workflow. charge is the fixed monthly amount
// billed when a member checks in before any invoice exists.
func NewService(
	checkins Repository,
	users user.Repository,
	clubs club.Repository,
	memberships membership.Repository,
	invoices invoice.Repository,
	manager *invoice.Manager,
	charge float64,
) Service {
	return &service{
		checkins:    checkins,
		users:       users,
		clubs:       clubs,
		memberships: memberships,
		invoices:    invoices,
		manager:     manager,
		charge:      charge,
	}
}

// CheckIn validates the member's standing, provisions the first invoice when
// none exists yet, burns one credit and records the visit.
func (s *service) CheckIn(ctx context.Context, userID, clubID int) (*CheckIn, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	cl, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, club.ErrClubNotFound
		}
		return nil, err
	}

	ms := u.Membership
	if ms == nil {
		ms, err = s.memberships.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if ms.State == membership.StateCancelled {
		metrics.RecordCheckIn("cancelled")
		return nil, ErrMembershipCancelled
	}

	hasInvoice, err := s.invoices.HasBillable(ctx, ms.ID)
	if err != nil {
		return nil, err
	}

	switch membership.BillingStateOf(hasInvoice, ms.AmountOfCredit, ms.EndDate, time.Now()) {
	case membership.BillingUnbilled:
		// First visit ever: bill the monthly charge so the account is
		// funded before the credit burn below.
		if _, err := s.manager.CreateInvoice(ctx, ms, u.Name, s.charge); err != nil {
			return nil, err
		}
		metrics.RecordInvoiceCreated("checkin")
		logger.Infof("Auto-provisioned invoice for membership %d on first check-in", ms.ID)
	case membership.BillingExhausted:
		metrics.RecordCheckIn("no_credit")
		return nil, ErrNoCredit
	case membership.BillingExpired:
		metrics.RecordCheckIn("expired")
		return nil, ErrExpired
	}

	balance, err := s.memberships.DecrementCredit(ctx, ms.ID)
	if err != nil {
		return nil, err
	}

	ci, err := s.checkins.Create(ctx, ms.ID, &cl.ID)
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckIn("success")
	logger.Infof("Check-in %d recorded for membership %d at club %d, %d credits left", ci.ID, ms.ID, cl.ID, balance)
	return ci, nil
}

func (s *service) List(ctx context.Context, userID *int, p listing.Params) ([]CheckInWithDetails, error) {
	return s.checkins.List(ctx, userID, p)
}
