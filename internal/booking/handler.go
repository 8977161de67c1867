package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MohammedShoaib-dev/FitMate/internal/api"
	"github.com/MohammedShoaib-dev/FitMate/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Book godoc
// @Summary      Book a class
// @Description  Creates a booking for the current user. Conflicts if the
// @Description  user already holds a booking for this class.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      int  true  "Class ID"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /classes/{classID}/book [post]
func (h *Handler) Book(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	booking, err := h.service.Book(c.Request.Context(), userID, classID)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		case errors.Is(err, ErrAlreadyBooked):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You already booked this class"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// Cancel godoc
// @Summary      Cancel a booking
// @Description  Removes the current user's booking for the class.
// @Description  Cancelling an absent booking succeeds as a no-op.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      int  true  "Class ID"
// @Success      200      {object}  api.MessageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /classes/{classID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), userID, classID); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking cancelled"})
}

// ListMyBookings godoc
// @Summary      List my booked class IDs
// @Description  Returns the set of class IDs the current user has booked,
// @Description  for membership checks by callers.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  ListBookingsResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	classIDs, err := h.service.ListBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	if classIDs == nil {
		classIDs = []int{}
	}

	c.JSON(http.StatusOK, ListBookingsResponse{ClassIDs: classIDs})
}

// GetClassAttendance godoc
// @Summary      Booked count for a class
// @Description  Admin view of how many bookings a class holds against
// @Description  its capacity.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      int  true  "Class ID"
// @Success      200      {object}  ClassAttendance
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/classes/{classID}/attendance [get]
func (h *Handler) GetClassAttendance(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	attendance, err := h.service.ClassAttendance(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch attendance"})
		return
	}

	c.JSON(http.StatusOK, attendance)
}

// ListMyBookingDetails godoc
// @Summary      List my bookings with class details
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingWithClass
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings/details [get]
func (h *Handler) ListMyBookingDetails(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	if bookings == nil {
		bookings = []BookingWithClass{}
	}

	c.JSON(http.StatusOK, bookings)
}
