// Package api holds the JSON envelopes and request-validation helpers
// shared by every FitMate handler.
package api

// ErrorResponse is the failure envelope for all endpoints. Error
// carries the user-facing message only; internals stay in the logs.
type ErrorResponse struct {
	Error string `json:"error" example:"You already booked this class"`
}

// MessageResponse acknowledges operations that return no entity, such
// as the idempotent booking cancellation.
type MessageResponse struct {
	Message string `json:"message" example:"Booking cancelled"`
}

// HealthResponse is the liveness probe body served at /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
