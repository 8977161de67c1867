package class

import "time"

type GymClass struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Instructor  string    `db:"instructor" json:"instructor"`
	Description string    `db:"description" json:"description"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
	Capacity    int       `db:"capacity" json:"capacity"`
	Category    string    `db:"category" json:"category"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Instructor  string `json:"instructor" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Category    string `json:"category"`
}
