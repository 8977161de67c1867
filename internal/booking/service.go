package booking

import (
	"context"
	"errors"

	"github.com/MohammedShoaib-dev/FitMate/internal/class"
	"github.com/MohammedShoaib-dev/FitMate/internal/db"
	"github.com/MohammedShoaib-dev/FitMate/internal/event"
	"github.com/MohammedShoaib-dev/FitMate/internal/metrics"
)

var (
	ErrAlreadyBooked = errors.New("user already has a booking for this class")
	ErrClassNotFound = errors.New("class not found")
)

// Service is the booking ledger. Each (user, class) pair is either
// NotBooked or Booked; Book moves it to Booked and conflicts if it is
// already there, Cancel moves it back and is a no-op when absent.
// Facility capacity is deliberately not enforced here.
type Service interface {
	Book(ctx context.Context, userID, classID int) (*Booking, error)
	Cancel(ctx context.Context, userID, classID int) error
	ListBookings(ctx context.Context, userID int) ([]int, error)
	GetUserBookings(ctx context.Context, userID int) ([]BookingWithClass, error)
	ClassAttendance(ctx context.Context, classID int) (*ClassAttendance, error)
}

type service struct {
	repo      Repository
	classRepo class.Repository
	bus       *event.Bus
}

func NewService(repo Repository, classRepo class.Repository, bus *event.Bus) Service {
	return &service{
		repo:      repo,
		classRepo: classRepo,
		bus:       bus,
	}
}

func (s *service) Book(ctx context.Context, userID, classID int) (*Booking, error) {
	if _, err := s.classRepo.GetClassByID(ctx, classID); err != nil {
		return nil, ErrClassNotFound
	}

	booking, err := s.repo.CreateBooking(ctx, userID, classID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			metrics.RecordBookingConflict()
			return nil, ErrAlreadyBooked
		}
		return nil, err
	}

	metrics.RecordBooking()
	s.bus.Publish(event.TopicBookingCreated, booking)

	return booking, nil
}

func (s *service) Cancel(ctx context.Context, userID, classID int) error {
	deleted, err := s.repo.DeleteBooking(ctx, userID, classID)
	if err != nil {
		return err
	}

	if deleted {
		metrics.RecordBookingCancellation()
		s.bus.Publish(event.TopicBookingCancelled, map[string]int{
			"user_id":  userID,
			"class_id": classID,
		})
	}

	return nil
}

func (s *service) ListBookings(ctx context.Context, userID int) ([]int, error) {
	return s.repo.ListClassIDs(ctx, userID)
}

func (s *service) GetUserBookings(ctx context.Context, userID int) ([]BookingWithClass, error) {
	return s.repo.GetUserBookings(ctx, userID)
}

func (s *service) ClassAttendance(ctx context.Context, classID int) (*ClassAttendance, error) {
	gymClass, err := s.classRepo.GetClassByID(ctx, classID)
	if err != nil {
		return nil, ErrClassNotFound
	}

	count, err := s.repo.CountBookingsForClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	return &ClassAttendance{
		ClassID:     classID,
		BookedCount: count,
		Capacity:    gymClass.Capacity,
	}, nil
}
