package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MohammedShoaib-dev/FitMate/internal/activity"
	"github.com/MohammedShoaib-dev/FitMate/internal/auth"
	"github.com/MohammedShoaib-dev/FitMate/internal/logger"
	"github.com/MohammedShoaib-dev/FitMate/internal/metrics"
)

const RequestIDHeader = "X-Request-ID"

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		metrics.RecordHTTPRequest(
			c.Request.Method,
			c.FullPath(),
			status,
			duration,
		)
	}
}

// RequestIDMiddleware attaches a request ID to every request, reusing the
// caller's X-Request-ID when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// activityMiddleware marks the authenticated member as recently active.
// Failures only get logged; requests never fail because Redis is down.
func activityMiddleware(recorder *activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if recorder != nil {
			if userID, ok := auth.GetUserID(c); ok {
				if err := recorder.Touch(c.Request.Context(), userID, time.Now()); err != nil {
					logger.WithError(err).Warn("failed to record member activity")
				}
			}
		}
		c.Next()
	}
}
