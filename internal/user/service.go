package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Emizy/fitness-club-manager-api/internal/email"
	"github.com/Emizy/fitness-club-manager-api/internal/listing"
	"github.com/Emizy/fitness-club-manager-api/internal/logger"
	"github.com/Emizy/fitness-club-manager-api/internal/metrics"
)

var (
	// ErrEmailExists keeps the exact message the API has always returned
	// for a duplicate email.
	ErrEmailExists  = errors.New("Email already exist")
	ErrUserNotFound = errors.New("user not found")
)

type Service interface {
	Register(ctx context.Context, req CreateUserRequest) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	List(ctx context.Context, p listing.Params) ([]User, error)
}

type service struct {
	repo   Repository
	mailer *email.Service
}

// NewService builds the user service. mailer may be nil; the welcome email
// is skipped then.
func NewService(repo Repository, mailer *email.Service) Service {
	return &service{repo: repo, mailer: mailer}
}

// Register onboards a user and creates the associated membership: credit 0,
// state active, no validity window until first invoicing.
func (s *service) Register(ctx context.Context, req CreateUserRequest) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	var phone *string
	if req.PhoneNumber != "" {
		phone = &req.PhoneNumber
	}

	u, err := s.repo.Create(ctx, req.Name, req.Email, phone)
	if err != nil {
		return nil, err
	}

	logger.Infof("User %d registered with membership %d", u.ID, u.Membership.ID)
	metrics.RecordUserRegistered()

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, u.Email, u.Name); err != nil {
			logger.Errorf("Failed to queue welcome email for %s: %v", u.Email, err)
		}
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context, p listing.Params) ([]User, error) {
	return s.repo.List(ctx, p)
}
