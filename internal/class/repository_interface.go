package class

import (
	"context"
	"time"
)

type Repository interface {
	CreateClass(ctx context.Context, name, instructor, description string, startTime, endTime time.Time, capacity int, category string) (*GymClass, error)
	GetClassByID(ctx context.Context, id int) (*GymClass, error)
	ListClasses(ctx context.Context) ([]GymClass, error)
}
