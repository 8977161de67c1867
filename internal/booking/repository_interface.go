package booking

import "context"

type Repository interface {
	CreateBooking(ctx context.Context, userID, classID int) (*Booking, error)
	DeleteBooking(ctx context.Context, userID, classID int) (bool, error)
	ListClassIDs(ctx context.Context, userID int) ([]int, error)
	GetUserBookings(ctx context.Context, userID int) ([]BookingWithClass, error)
	CountBookingsForClass(ctx context.Context, classID int) (int, error)
}
