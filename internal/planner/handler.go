package planner

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MohammedShoaib-dev/FitMate/internal/api"
	"github.com/MohammedShoaib-dev/FitMate/internal/logger"
	"github.com/MohammedShoaib-dev/FitMate/internal/metrics"
)

type PlanResponse struct {
	Plan string `json:"plan"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// WorkoutPlan godoc
// @Summary Generate a weekly workout plan
// @Tags ai
// @Accept json
// @Produce json
// @Param request body WorkoutRequest true "Workout preferences"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 503 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /ai/workout [post]
func (h *Handler) WorkoutPlan(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	plan, err := h.service.WorkoutPlan(c.Request.Context(), req)
	if err != nil {
		h.planError(c, err)
		return
	}

	metrics.RecordPlanGenerated("workout")
	c.JSON(http.StatusOK, PlanResponse{Plan: plan})
}

// DietPlan godoc
// @Summary Generate a weekly diet plan
// @Tags ai
// @Accept json
// @Produce json
// @Param request body DietRequest true "Diet preferences"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 503 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /ai/diet [post]
func (h *Handler) DietPlan(c *gin.Context) {
	var req DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	plan, err := h.service.DietPlan(c.Request.Context(), req)
	if err != nil {
		h.planError(c, err)
		return
	}

	metrics.RecordPlanGenerated("diet")
	c.JSON(http.StatusOK, PlanResponse{Plan: plan})
}

func (h *Handler) planError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "AI plan generation is not configured"})
		return
	}
	logger.WithError(err).Error("plan generation failed")
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate plan"})
}
