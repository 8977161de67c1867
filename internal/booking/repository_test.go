package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestCreateBooking(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (user_id, class_id) VALUES ($1, $2) RETURNING id, user_id, class_id, created_at")).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "class_id", "created_at"}).
			AddRow(10, 1, 2, now))

	b, err := repo.CreateBooking(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, 10, b.ID)
	require.Equal(t, 1, b.UserID)
	require.Equal(t, 2, b.ClassID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingUniqueViolation(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (user_id, class_id) VALUES ($1, $2) RETURNING id, user_id, class_id, created_at")).
		WithArgs(1, 2).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_user_id_class_id_key"})

	_, err := repo.CreateBooking(context.Background(), 1, 2)
	require.Error(t, err)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	require.Equal(t, pq.ErrorCode("23505"), pqErr.Code)
}

func TestDeleteBooking(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	// Row present: deleted.
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE user_id = $1 AND class_id = $2")).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteBooking(context.Background(), 1, 2)
	require.NoError(t, err)
	require.True(t, deleted)

	// Row absent: still no error, just not deleted.
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE user_id = $1 AND class_id = $2")).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = repo.DeleteBooking(context.Background(), 1, 2)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestListClassIDs(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT class_id FROM bookings WHERE user_id = $1 ORDER BY class_id ASC")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"class_id"}).AddRow(2).AddRow(5).AddRow(9))

	ids, err := repo.ListClassIDs(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5, 9}, ids)
}

func TestGetUserBookings(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT(.|\n)*FROM bookings b(.|\n)*JOIN gym_classes c ON b.class_id = c.id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "class_id", "created_at", "class_name", "instructor", "start_time", "end_time", "category"}).
			AddRow(10, 1, 2, time.Now(), "Yoga Flow", "Maya", start, start.Add(time.Hour), "Yoga"))

	bookings, err := repo.GetUserBookings(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.Equal(t, "Yoga Flow", bookings[0].ClassName)
}

func TestCountBookingsForClass(t *testing.T) {
	repo, mock, closeFn := setupMock(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE class_id = $1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountBookingsForClass(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 7, count)
}
