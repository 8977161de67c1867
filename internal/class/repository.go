package class

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateClass(ctx context.Context, name, instructor, description string, startTime, endTime time.Time, capacity int, category string) (*GymClass, error) {
	query := `
		INSERT INTO gym_classes (name, instructor, description, start_time, end_time, capacity, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, instructor, description, start_time, end_time, capacity, category, created_at
	`

	var class GymClass
	err := r.db.GetContext(ctx, &class, query, name, instructor, description, startTime, endTime, capacity, category)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	query := `
		SELECT id, name, instructor, description, start_time, end_time, capacity, category, created_at
		FROM gym_classes
		WHERE id = $1
	`

	var class GymClass
	err := r.db.GetContext(ctx, &class, query, id)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) ListClasses(ctx context.Context) ([]GymClass, error) {
	query := `
		SELECT id, name, instructor, description, start_time, end_time, capacity, category, created_at
		FROM gym_classes
		ORDER BY start_time ASC
	`

	var classes []GymClass
	err := r.db.SelectContext(ctx, &classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}
