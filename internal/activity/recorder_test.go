package activity

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTouch(t *testing.T) {
	client, mock := redismock.NewClientMock()
	recorder := NewRecorder(client)

	now := time.Unix(1700000000, 0)
	mock.ExpectZAdd(activityKey, redis.Z{
		Score:  float64(now.Unix()),
		Member: "7",
	}).SetVal(1)

	err := recorder.Touch(context.Background(), 7, now)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	recorder := NewRecorder(client)

	now := time.Unix(1700000000, 0)
	mock.ExpectZAdd(activityKey, redis.Z{
		Score:  float64(now.Unix()),
		Member: "7",
	}).SetErr(assert.AnError)

	err := recorder.Touch(context.Background(), 7, now)
	assert.Error(t, err)
}

func TestCountActiveSince(t *testing.T) {
	client, mock := redismock.NewClientMock()
	recorder := NewRecorder(client)

	since := time.Unix(1700000000, 0)
	mock.ExpectZCount(activityKey, strconv.FormatInt(since.Unix(), 10), "+inf").SetVal(12)

	count, err := recorder.CountActiveSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActiveSinceError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	recorder := NewRecorder(client)

	since := time.Unix(1700000000, 0)
	mock.ExpectZCount(activityKey, strconv.FormatInt(since.Unix(), 10), "+inf").SetErr(assert.AnError)

	_, err := recorder.CountActiveSince(context.Background(), since)
	assert.Error(t, err)
}

func TestTrim(t *testing.T) {
	client, mock := redismock.NewClientMock()
	recorder := NewRecorder(client)

	cutoff := time.Unix(1700000000, 0)
	mock.ExpectZRemRangeByScore(activityKey, "-inf", "(1700000000").SetVal(3)

	err := recorder.Trim(context.Background(), cutoff)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
