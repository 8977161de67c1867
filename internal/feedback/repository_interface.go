package feedback

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, category, message string) (*Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}
