package booking

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateBooking inserts the (user, class) pair. The unique constraint on
// (user_id, class_id) serializes concurrent duplicates; the caller maps
// that violation to a conflict.
func (r *repository) CreateBooking(ctx context.Context, userID, classID int) (*Booking, error) {
	query := `
		INSERT INTO bookings (user_id, class_id)
		VALUES ($1, $2)
		RETURNING id, user_id, class_id, created_at
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, userID, classID)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// DeleteBooking removes the pair if present and reports whether a row
// was deleted. Zero rows is not an error: cancellation is idempotent.
func (r *repository) DeleteBooking(ctx context.Context, userID, classID int) (bool, error) {
	query := `
		DELETE FROM bookings
		WHERE user_id = $1 AND class_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, userID, classID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *repository) ListClassIDs(ctx context.Context, userID int) ([]int, error) {
	query := `
		SELECT class_id
		FROM bookings
		WHERE user_id = $1
		ORDER BY class_id ASC
	`

	var classIDs []int
	err := r.db.SelectContext(ctx, &classIDs, query, userID)
	if err != nil {
		return nil, err
	}

	return classIDs, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID int) ([]BookingWithClass, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.class_id,
			b.created_at,
			c.name AS class_name,
			c.instructor,
			c.start_time,
			c.end_time,
			c.category
		FROM bookings b
		JOIN gym_classes c ON b.class_id = c.id
		WHERE b.user_id = $1
		ORDER BY c.start_time ASC
	`

	var bookings []BookingWithClass
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) CountBookingsForClass(ctx context.Context, classID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE class_id = $1
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, classID)
	if err != nil {
		return 0, err
	}

	return count, nil
}
