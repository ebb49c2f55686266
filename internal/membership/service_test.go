package membership

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) GetByID(ctx context.Context, id int) (*Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepo) GetByUserID(ctx context.Context, userID int) (*Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepo) List(ctx context.Context, p listing.Params) ([]Membership, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Membership), args.Error(1)
}

func (m *MockRepo) Cancel(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepo) DecrementCredit(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) ListExpiring(ctx context.Context, from, to time.Time) ([]ExpiringMember, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ExpiringMember), args.Error(1)
}

func TestService_Cancel(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&Membership{ID: 1, State: StateActive}, nil)
	repo.On("Cancel", mock.Anything, 1).Return(nil)

	svc := NewService(repo)

	err := svc.Cancel(context.Background(), 1)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&Membership{ID: 1, State: StateCancelled}, nil)

	svc := NewService(repo)

	err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestService_Cancel_NotFound(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	svc := NewService(repo)

	err := svc.Cancel(context.Background(), 99)

	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestService_Cancel_LostRace(t *testing.T) {
	// Another request cancelled between the read and the update.
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&Membership{ID: 1, State: StateActive}, nil)
	repo.On("Cancel", mock.Anything, 1).Return(ErrNotActive)

	svc := NewService(repo)

	err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 42).Return(nil, sql.ErrNoRows)

	svc := NewService(repo)

	m, err := svc.Get(context.Background(), 42)

	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}
