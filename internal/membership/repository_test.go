package membership

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, func() { db.Close() }
}

func membershipRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "state", "amount_of_credit", "start_date", "end_date", "created_at", "updated_at",
	})
}

func TestGetByID(t *testing.T) {
	repo, mock, closeFn := newTestRepo(t)
	defer closeFn()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, user_id, state, amount_of_credit, start_date, end_date, created_at, updated_at\s+FROM memberships\s+WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(membershipRows().AddRow(1, 7, "active", 499, now, now.AddDate(0, 0, 30), now, now))

	m, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, 7, m.UserID)
	assert.Equal(t, StateActive, m.State)
	assert.Equal(t, int64(499), m.AmountOfCredit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	repo, mock, closeFn := newTestRepo(t)
	defer closeFn()

	mock.ExpectExec(`UPDATE memberships\s+SET state = 'cancelled', updated_at = NOW\(\)\s+WHERE id = \$1 AND state = 'active'`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo, mock, closeFn := newTestRepo(t)
	defer closeFn()

	mock.ExpectExec(`UPDATE memberships`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementCredit(t *testing.T) {
	repo, mock, closeFn := newTestRepo(t)
	defer closeFn()

	mock.ExpectQuery(`UPDATE memberships\s+SET amount_of_credit = amount_of_credit - 1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"amount_of_credit"}).AddRow(498))

	balance, err := repo.DecrementCredit(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(498), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListExpiring(t *testing.T) {
	repo, mock, closeFn := newTestRepo(t)
	defer closeFn()

	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 3)

	mock.ExpectQuery(`SELECT m.id, m.end_date, u.name AS user_name, u.email AS user_email\s+FROM memberships m`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "end_date", "user_name", "user_email"}).
			AddRow(1, from.AddDate(0, 0, 2), "Ann", "ann@example.com").
			AddRow(2, to, "Bob", "bob@example.com"))

	members, err := repo.ListExpiring(context.Background(), from, to)
	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, "ann@example.com", members[0].UserEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}
