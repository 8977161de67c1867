package booking

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MohammedShoaib-dev/FitMate/internal/class"
	"github.com/MohammedShoaib-dev/FitMate/internal/event"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupBookingRouter(repo Repository, classRepo class.Repository, userID int) (*gin.Engine, *event.Bus) {
	gin.SetMode(gin.TestMode)
	bus := event.NewBus()
	handler := NewHandler(NewService(repo, classRepo, bus))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.POST("/classes/:classID/book", handler.Book)
	router.POST("/classes/:classID/cancel", handler.Cancel)
	router.GET("/bookings", handler.ListMyBookings)
	router.GET("/admin/classes/:classID/attendance", handler.GetClassAttendance)
	return router, bus
}

func TestBookHandler(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	classRepo.On("GetClassByID", mock.Anything, 2).Return(&class.GymClass{ID: 2}, nil)
	repo.On("CreateBooking", mock.Anything, 1, 2).Return(&Booking{ID: 10, UserID: 1, ClassID: 2}, nil)

	req := httptest.NewRequest("POST", "/classes/2/book", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"class_id":2`)
}

func TestBookHandlerConflict(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	classRepo.On("GetClassByID", mock.Anything, 2).Return(&class.GymClass{ID: 2}, nil)
	repo.On("CreateBooking", mock.Anything, 1, 2).Return(nil, &pq.Error{Code: "23505"})

	req := httptest.NewRequest("POST", "/classes/2/book", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookHandlerInvalidID(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	req := httptest.NewRequest("POST", "/classes/abc/book", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookHandlerClassNotFound(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	classRepo.On("GetClassByID", mock.Anything, 99).Return(nil, assert.AnError)

	req := httptest.NewRequest("POST", "/classes/99/book", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelHandlerNoOp(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	repo.On("DeleteBooking", mock.Anything, 1, 2).Return(false, nil)

	req := httptest.NewRequest("POST", "/classes/2/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Absent booking still cancels cleanly.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListMyBookingsHandler(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	repo.On("ListClassIDs", mock.Anything, 1).Return([]int{2, 5}, nil)

	req := httptest.NewRequest("GET", "/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"class_ids":[2,5]}`, w.Body.String())
}

func TestListMyBookingsHandlerEmpty(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	repo.On("ListClassIDs", mock.Anything, 1).Return([]int(nil), nil)

	req := httptest.NewRequest("GET", "/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"class_ids":[]}`, w.Body.String())
}

func TestGetClassAttendanceHandler(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	classRepo.On("GetClassByID", mock.Anything, 2).Return(&class.GymClass{ID: 2, Capacity: 20}, nil)
	repo.On("CountBookingsForClass", mock.Anything, 2).Return(13, nil)

	req := httptest.NewRequest("GET", "/admin/classes/2/attendance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"class_id":2,"booked_count":13,"capacity":20}`, w.Body.String())
}

func TestGetClassAttendanceHandlerNotFound(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	classRepo.On("GetClassByID", mock.Anything, 99).Return(nil, assert.AnError)

	req := httptest.NewRequest("GET", "/admin/classes/99/attendance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetClassAttendanceHandlerInvalidID(t *testing.T) {
	repo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	router, bus := setupBookingRouter(repo, classRepo, 1)
	defer bus.Close()

	req := httptest.NewRequest("GET", "/admin/classes/abc/attendance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
