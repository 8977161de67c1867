package class

import (
	"errors"
	"net/http"

	"github.com/MohammedShoaib-dev/FitMate/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateClass godoc
// @Summary      Create gym class
// @Description  Creates a new gym class. Admin only.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateClassRequest  true  "Class data"
// @Success      201      {object}  GymClass
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/create-class [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTimes), errors.Is(err, ErrInvalidInput):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create class"})
		}
		return
	}

	c.JSON(http.StatusCreated, class)
}

// ListClasses godoc
// @Summary      List gym classes
// @Description  Returns all classes ordered by start time.
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   GymClass
// @Failure      500  {object}  api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		return
	}

	if classes == nil {
		classes = []GymClass{}
	}

	c.JSON(http.StatusOK, classes)
}
