package feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MohammedShoaib-dev/FitMate/internal/api"
	"github.com/MohammedShoaib-dev/FitMate/internal/auth"
	"github.com/MohammedShoaib-dev/FitMate/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Submit godoc
// @Summary      Submit feedback
// @Tags         feedback
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SubmitFeedbackRequest  true  "Feedback"
// @Success      201      {object}  Feedback
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /feedback [post]
func (h *Handler) Submit(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	fb, err := h.repo.Create(c.Request.Context(), userID, req.Category, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to submit feedback"})
		return
	}

	metrics.RecordFeedbackSubmitted()

	c.JSON(http.StatusCreated, fb)
}

// List godoc
// @Summary      List all feedback
// @Description  Returns feedback newest first. Admin only.
// @Tags         feedback
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Feedback
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/feedback [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch feedback"})
		return
	}

	if items == nil {
		items = []Feedback{}
	}

	c.JSON(http.StatusOK, items)
}

// UpdateStatus godoc
// @Summary      Update feedback status
// @Tags         feedback
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        feedbackID  path      int                  true  "Feedback ID"
// @Param        request     body      UpdateStatusRequest  true  "New status"
// @Success      200         {object}  api.MessageResponse
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Failure      500         {object}  api.ErrorResponse
// @Router       /admin/feedback/{feedbackID}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	feedbackID, err := strconv.Atoi(c.Param("feedbackID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid feedback ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	if err := h.repo.UpdateStatus(c.Request.Context(), feedbackID, req.Status); err != nil {
		if errors.Is(err, ErrFeedbackNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Feedback not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Status updated"})
}
