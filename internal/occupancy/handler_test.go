package occupancy

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOccupancyRouter(t *testing.T, source ActivitySource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	estimator, err := NewEstimator(source, 100, time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/occupancy", NewHandler(estimator).GetOccupancy)
	return router
}

func TestGetOccupancy(t *testing.T) {
	router := setupOccupancyRouter(t, &stubSource{count: 55})

	req := httptest.NewRequest("GET", "/occupancy", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status      string `json:"status"`
		Percent     int    `json:"percent"`
		Color       string `json:"color"`
		ActiveCount *int   `json:"activeCount"`
		Capacity    *int   `json:"capacity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Moderately Busy", body.Status)
	assert.Equal(t, 55, body.Percent)
	assert.Equal(t, "yellow", body.Color)
	require.NotNil(t, body.ActiveCount)
	assert.Equal(t, 55, *body.ActiveCount)
	require.NotNil(t, body.Capacity)
	assert.Equal(t, 100, *body.Capacity)
}

func TestGetOccupancyFallbackOmitsCounts(t *testing.T) {
	source := &stubSource{err: errors.New("store unreachable")}
	router := setupOccupancyRouter(t, source)

	req := httptest.NewRequest("GET", "/occupancy", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Contains(t, body, "status")
	assert.Contains(t, body, "percent")
	assert.Contains(t, body, "color")
	assert.NotContains(t, body, "activeCount")
	assert.NotContains(t, body, "capacity")
}

// Guard against the source being consulted more than once per request.
func TestGetOccupancySingleSourceCall(t *testing.T) {
	source := &stubSource{count: 10}
	router := setupOccupancyRouter(t, source)

	req := httptest.NewRequest("GET", "/occupancy", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 1, source.calls)
}
