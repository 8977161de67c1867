package class

import (
	"context"
	"errors"
	"time"

	"github.com/MohammedShoaib-dev/FitMate/internal/event"
)

var (
	ErrClassNotFound = errors.New("class not found")
	ErrInvalidTimes  = errors.New("end time must be after start time")
	ErrInvalidInput  = errors.New("invalid class data")
)

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error)
	GetClassByID(ctx context.Context, id int) (*GymClass, error)
	ListClasses(ctx context.Context) ([]GymClass, error)
}

type service struct {
	repo Repository
	bus  *event.Bus
}

func NewService(repo Repository, bus *event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
	}
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error) {
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrInvalidInput
	}

	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrInvalidInput
	}

	if !endTime.After(startTime) {
		return nil, ErrInvalidTimes
	}

	if req.Capacity <= 0 {
		return nil, ErrInvalidInput
	}

	class, err := s.repo.CreateClass(ctx, req.Name, req.Instructor, req.Description,
		startTime, endTime, req.Capacity, req.Category)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.TopicClassCreated, class)

	return class, nil
}

func (s *service) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	class, err := s.repo.GetClassByID(ctx, id)
	if err != nil {
		return nil, ErrClassNotFound
	}
	return class, nil
}

func (s *service) ListClasses(ctx context.Context) ([]GymClass, error) {
	return s.repo.ListClasses(ctx)
}
