package membership

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
	"github.com/Emizy/fitness-club-manager-api/internal/logger"
	"github.com/Emizy/fitness-club-manager-api/internal/metrics"
)

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAlreadyCancelled   = errors.New("membership already cancelled")
)

type Service interface {
	Get(ctx context.Context, id int) (*Membership, error)
	List(ctx context.Context, p listing.Params) ([]Membership, error)
	Cancel(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, id int) (*Membership, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) List(ctx context.Context, p listing.Params) ([]Membership, error) {
	return s.repo.List(ctx, p)
}

// Cancel is the single terminal transition active -> cancelled. Reactivation
// only ever happens through invoicing, never through this path.
func (s *service) Cancel(ctx context.Context, id int) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMembershipNotFound
		}
		return err
	}

	if m.State == StateCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.repo.Cancel(ctx, id); err != nil {
		if errors.Is(err, ErrNotActive) {
			return ErrAlreadyCancelled
		}
		return err
	}

	logger.Infof("Membership %d cancelled", id)
	metrics.RecordMembershipCancellation()
	return nil
}
