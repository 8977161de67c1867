package feedback

import "time"

// Feedback statuses follow the admin console's workflow.
const (
	StatusReceived   = "Received"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

type Feedback struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Category    string    `db:"category" json:"category"`
	Message     string    `db:"message" json:"message"`
	Status      string    `db:"status" json:"status"`
	SubmittedAt time.Time `db:"submitted_at" json:"submitted_at"`
}

type SubmitFeedbackRequest struct {
	Category string `json:"category" binding:"required,oneof=Equipment Cleanliness Staff Other"`
	Message  string `json:"message" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Received 'In Progress' Resolved"`
}
