package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned when no generation backend was configured.
var ErrNotConfigured = errors.New("plan generation is not configured")

type WorkoutRequest struct {
	Goal  string `json:"goal" binding:"required"`
	Level string `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	Days  int    `json:"days" binding:"required,min=1,max=7"`
}

type DietRequest struct {
	Goal           string `json:"goal" binding:"required"`
	DietPreference string `json:"diet_preference"`
	MealsPerDay    int    `json:"meals_per_day" binding:"omitempty,min=1,max=8"`
}

// Service produces workout and diet plans for members. A nil Generator
// means the feature is disabled and every call returns ErrNotConfigured.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

func (s *Service) Configured() bool {
	return s.gen != nil
}

func (s *Service) WorkoutPlan(ctx context.Context, req WorkoutRequest) (string, error) {
	if s.gen == nil {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(
		"Create a %d-day weekly workout plan for a %s gym member whose goal is %q. "+
			"List exercises with sets and reps for each training day.",
		req.Days, strings.ToLower(req.Level), req.Goal,
	)

	return s.gen.Generate(ctx, prompt)
}

func (s *Service) DietPlan(ctx context.Context, req DietRequest) (string, error) {
	if s.gen == nil {
		return "", ErrNotConfigured
	}

	meals := req.MealsPerDay
	if meals == 0 {
		meals = 3
	}

	prompt := fmt.Sprintf("Create a one-week diet plan with %d meals per day for a gym member whose goal is %q.", meals, req.Goal)
	if req.DietPreference != "" {
		prompt += fmt.Sprintf(" The member follows a %s diet.", strings.ToLower(req.DietPreference))
	}

	return s.gen.Generate(ctx, prompt)
}
