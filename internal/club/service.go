package club

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

var ErrClubNotFound = errors.New("fitness club not found")

type Service interface {
	Create(ctx context.Context, req CreateClubRequest) (*Club, error)
	Get(ctx context.Context, id int) (*Club, error)
	List(ctx context.Context, p listing.Params) ([]Club, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateClubRequest) (*Club, error) {
	return s.repo.Create(ctx, req.Name, req.Description)
}

func (s *service) Get(ctx context.Context, id int) (*Club, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context, p listing.Params) ([]Club, error) {
	return s.repo.List(ctx, p)
}
