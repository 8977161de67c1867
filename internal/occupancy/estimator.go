package occupancy

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/MohammedShoaib-dev/FitMate/internal/logger"
	"github.com/MohammedShoaib-dev/FitMate/internal/metrics"
)

type Status string

const (
	StatusQuiet          Status = "Quiet"
	StatusModeratelyBusy Status = "Moderately Busy"
	StatusVeryBusy       Status = "Very Busy"
)

const (
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

// Busyness thresholds in percent.
const (
	veryBusyThreshold       = 80
	moderatelyBusyThreshold = 40
)

var ErrInvalidConfig = errors.New("occupancy: capacity and window must be positive")

// Reading describes how busy the gym currently is. ActiveCount and
// Capacity are nil when the reading came from the time-of-day fallback,
// which signals callers that the number is an estimate only.
type Reading struct {
	Status      Status `json:"status"`
	Percent     int    `json:"percent"`
	Color       string `json:"color"`
	ActiveCount *int   `json:"activeCount,omitempty"`
	Capacity    *int   `json:"capacity,omitempty"`
}

// ActivitySource reports how many users showed activity at or after a
// point in time. The Redis recorder implements it in production.
type ActivitySource interface {
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
}

// Estimator derives an occupancy Reading from recent activity, falling
// back to a randomized time-of-day heuristic when the source fails.
type Estimator struct {
	source   ActivitySource
	capacity int
	window   time.Duration

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewEstimator(source ActivitySource, capacity int, window time.Duration) (*Estimator, error) {
	if capacity <= 0 || window <= 0 {
		return nil, ErrInvalidConfig
	}

	return &Estimator{
		source:   source,
		capacity: capacity,
		window:   window,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}, nil
}

// SetRand replaces the randomness source used by the fallback estimate.
func (e *Estimator) SetRand(rng *rand.Rand) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng = rng
}

// SetClock replaces the wall clock.
func (e *Estimator) SetClock(now func() time.Time) {
	e.now = now
}

// Estimate produces the current occupancy reading. A single failed call
// to the activity source triggers the fallback immediately; there are no
// retries.
func (e *Estimator) Estimate(ctx context.Context) (Reading, error) {
	if e.capacity <= 0 || e.window <= 0 {
		return Reading{}, ErrInvalidConfig
	}

	now := e.now()

	if e.source != nil {
		count, err := e.source.CountActiveSince(ctx, now.Add(-e.window))
		if err == nil {
			reading := e.fromActivity(count)
			metrics.RecordOccupancy(reading.Percent, false)
			logger.Info("gym occupancy",
				"status", reading.Status,
				"percent", reading.Percent,
				"color", reading.Color,
				"active_count", count,
				"capacity", e.capacity,
			)
			return reading, nil
		}
		logger.Warn("activity source unavailable, using time-of-day estimate", "error", err)
	}

	reading := e.fallback(now.Hour())
	metrics.RecordOccupancy(reading.Percent, true)
	logger.Info("gym occupancy",
		"status", reading.Status,
		"percent", reading.Percent,
		"color", reading.Color,
		"estimated", true,
	)
	return reading, nil
}

func (e *Estimator) fromActivity(activeCount int) Reading {
	percent := int(math.Round(float64(activeCount) / float64(e.capacity) * 100))
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	status, color := classify(percent)

	count := activeCount
	capacity := e.capacity
	return Reading{
		Status:      status,
		Percent:     percent,
		Color:       color,
		ActiveCount: &count,
		Capacity:    &capacity,
	}
}

// fallback mirrors typical gym traffic: packed in the morning and
// evening rush, moderate midday, quiet overnight.
func (e *Estimator) fallback(hour int) Reading {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case (hour >= 6 && hour <= 9) || (hour >= 17 && hour <= 20):
		return Reading{
			Status:  StatusVeryBusy,
			Percent: 70 + e.rng.Intn(20),
			Color:   ColorRed,
		}
	case hour >= 10 && hour <= 16:
		return Reading{
			Status:  StatusModeratelyBusy,
			Percent: 40 + e.rng.Intn(30),
			Color:   ColorYellow,
		}
	default:
		return Reading{
			Status:  StatusQuiet,
			Percent: 10 + e.rng.Intn(30),
			Color:   ColorGreen,
		}
	}
}

func classify(percent int) (Status, string) {
	switch {
	case percent >= veryBusyThreshold:
		return StatusVeryBusy, ColorRed
	case percent >= moderatelyBusyThreshold:
		return StatusModeratelyBusy, ColorYellow
	default:
		return StatusQuiet, ColorGreen
	}
}
