package occupancy

import (
	"net/http"

	"github.com/MohammedShoaib-dev/FitMate/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	estimator *Estimator
}

func NewHandler(estimator *Estimator) *Handler {
	return &Handler{estimator: estimator}
}

// GetOccupancy godoc
// @Summary      Current gym occupancy
// @Description  Returns how busy the gym is right now. Falls back to a
// @Description  time-of-day estimate when the activity signal is down,
// @Description  in which case activeCount and capacity are omitted.
// @Tags         occupancy
// @Produce      json
// @Success      200  {object}  Reading
// @Failure      500  {object}  api.ErrorResponse
// @Router       /occupancy [get]
func (h *Handler) GetOccupancy(c *gin.Context) {
	reading, err := h.estimator.Estimate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, reading)
}
