package feedback

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, category, message string) (*Feedback, error) {
	query := `
		INSERT INTO feedback (user_id, category, message, status)
		VALUES ($1, $2, $3, 'Received')
		RETURNING id, user_id, category, message, status, submitted_at
	`

	var fb Feedback
	err := r.db.GetContext(ctx, &fb, query, userID, category, message)
	if err != nil {
		return nil, err
	}

	return &fb, nil
}

func (r *repository) List(ctx context.Context) ([]Feedback, error) {
	query := `
		SELECT id, user_id, category, message, status, submitted_at
		FROM feedback
		ORDER BY submitted_at DESC
	`

	var items []Feedback
	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
		UPDATE feedback
		SET status = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}
