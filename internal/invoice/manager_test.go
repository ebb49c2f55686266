package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Emizy/fitness-club-manager-api/internal/membership"
)

func TestComputeCredit(t *testing.T) {
	assert.Equal(t, int64(500), ComputeCredit(1000))
	assert.Equal(t, int64(499), ComputeCredit(999))
	assert.Equal(t, int64(0), ComputeCredit(1))
	assert.Equal(t, int64(0), ComputeCredit(0))
	assert.Equal(t, int64(0), ComputeCredit(-50))
}

func TestManager_CreateInvoice(t *testing.T) {
	repo := new(MockRepo)
	mgr := NewManager(repo, true)

	ms := &membership.Membership{ID: 3, UserID: 7, State: membership.StateCancelled}

	var captured NewInvoice
	repo.On("Create", mock.Anything, mock.MatchedBy(func(in NewInvoice) bool {
		captured = in
		return true
	})).Return(&Invoice{ID: 11, MembershipID: 3, Status: StatusOutstanding, Amount: 1000}, nil)

	inv, err := mgr.CreateInvoice(context.Background(), ms, "Jane Doe", 1000)
	assert.NoError(t, err)
	assert.Equal(t, 11, inv.ID)

	assert.Equal(t, 3, captured.MembershipID)
	assert.Equal(t, "Jane Doe membership invoice", captured.Description)
	assert.Equal(t, "Invoice line for month of "+time.Now().Format("2006-01"), captured.RowDescription)
	assert.Equal(t, float64(1000), captured.Amount)
	assert.Equal(t, int64(500), captured.Credit)
	assert.True(t, captured.Reactivate)
	assert.WithinDuration(t, time.Now(), captured.StartDate, time.Minute)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), captured.EndDate, time.Minute)
	repo.AssertExpectations(t)
}

func TestManager_CreateInvoice_NoReactivate(t *testing.T) {
	repo := new(MockRepo)
	mgr := NewManager(repo, false)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(in NewInvoice) bool {
		return !in.Reactivate
	})).Return(&Invoice{ID: 12}, nil)

	_, err := mgr.CreateInvoice(context.Background(), &membership.Membership{ID: 3}, "Jane Doe", 200)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestManager_CreateInvoice_InvalidAmount(t *testing.T) {
	repo := new(MockRepo)
	mgr := NewManager(repo, true)

	_, err := mgr.CreateInvoice(context.Background(), &membership.Membership{ID: 3}, "Jane Doe", 0)
	assert.ErrorIs(t, err, ErrAmountInvalid)
	repo.AssertNotCalled(t, "Create")
}

func TestManager_AddRow(t *testing.T) {
	repo := new(MockRepo)
	mgr := NewManager(repo, true)

	repo.On("AddRow", mock.Anything, 11, float64(250), "Late fee").
		Return(&Row{ID: 2, InvoiceID: 11, Amount: 250, Description: "Late fee"}, nil)

	row, err := mgr.AddRow(context.Background(), 11, 250, "Late fee")
	assert.NoError(t, err)
	assert.Equal(t, float64(250), row.Amount)
	repo.AssertExpectations(t)
}

func TestManager_AddRow_InvalidAmount(t *testing.T) {
	repo := new(MockRepo)
	mgr := NewManager(repo, true)

	_, err := mgr.AddRow(context.Background(), 11, -5, "Late fee")
	assert.ErrorIs(t, err, ErrRowAmountInvalid)
	repo.AssertNotCalled(t, "AddRow")
}
