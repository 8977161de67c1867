package feedback

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func feedbackColumns() []string {
	return []string{"id", "user_id", "category", "message", "status", "submitted_at"}
}

func TestCreateFeedback(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO feedback (user_id, category, message, status) VALUES ($1, $2, $3, 'Received') RETURNING id, user_id, category, message, status, submitted_at")).
		WithArgs(1, "Equipment", "Treadmill 3 is broken").
		WillReturnRows(sqlmock.NewRows(feedbackColumns()).
			AddRow(1, 1, "Equipment", "Treadmill 3 is broken", "Received", time.Now()))

	fb, err := repo.Create(context.Background(), 1, "Equipment", "Treadmill 3 is broken")
	require.NoError(t, err)
	require.Equal(t, StatusReceived, fb.Status)
}

func TestListFeedbackNewestFirst(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, category, message, status, submitted_at FROM feedback ORDER BY submitted_at DESC")).
		WillReturnRows(sqlmock.NewRows(feedbackColumns()).
			AddRow(2, 1, "Staff", "Great trainers", "Received", time.Now()).
			AddRow(1, 2, "Other", "More lockers please", "Resolved", time.Now().Add(-time.Hour)))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 2, items[0].ID)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE feedback SET status = $1 WHERE id = $2")).
		WithArgs("Resolved", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 1, StatusResolved))
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE feedback SET status = $1 WHERE id = $2")).
		WithArgs("Resolved", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, StatusResolved)
	require.ErrorIs(t, err, ErrFeedbackNotFound)
}
