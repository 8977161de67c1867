package activity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const activityKey = "activity:last_seen"

// Recorder keeps one last-seen timestamp per user in a Redis sorted set,
// scored by unix seconds. It approximates who is currently in the gym
// from recent sign-in activity; it is a proxy signal, not presence.
type Recorder struct {
	redis *redis.Client
}

func NewRecorder(client *redis.Client) *Recorder {
	return &Recorder{redis: client}
}

// Touch records activity for the user at now. Re-touching moves the
// user's score forward, so each user counts once.
func (r *Recorder) Touch(ctx context.Context, userID int, now time.Time) error {
	err := r.redis.ZAdd(ctx, activityKey, redis.Z{
		Score:  float64(now.Unix()),
		Member: strconv.Itoa(userID),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// CountActiveSince returns how many users were seen at or after since.
func (r *Recorder) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	count, err := r.redis.ZCount(ctx, activityKey,
		strconv.FormatInt(since.Unix(), 10), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count recent activity: %w", err)
	}
	return int(count), nil
}

// Trim drops entries older than cutoff so the set does not grow without
// bound. Best-effort; callers run it periodically.
func (r *Recorder) Trim(ctx context.Context, cutoff time.Time) error {
	err := r.redis.ZRemRangeByScore(ctx, activityKey,
		"-inf", fmt.Sprintf("(%d", cutoff.Unix())).Err()
	if err != nil {
		return fmt.Errorf("failed to trim activity set: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *Recorder) Close() error {
	return r.redis.Close()
}
