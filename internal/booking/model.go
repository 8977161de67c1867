package booking

import "time"

type Booking struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	ClassID   int       `db:"class_id" json:"class_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type BookingWithClass struct {
	Booking
	ClassName  string    `db:"class_name" json:"class_name"`
	Instructor string    `db:"instructor" json:"instructor"`
	StartTime  time.Time `db:"start_time" json:"start_time"`
	EndTime    time.Time `db:"end_time" json:"end_time"`
	Category   string    `db:"category" json:"category"`
}

type ListBookingsResponse struct {
	ClassIDs []int `json:"class_ids"`
}

// ClassAttendance is the admin view of how full a class is. Bookings
// are not capped at capacity, so BookedCount can exceed it.
type ClassAttendance struct {
	ClassID     int `json:"class_id"`
	BookedCount int `json:"booked_count"`
	Capacity    int `json:"capacity"`
}
