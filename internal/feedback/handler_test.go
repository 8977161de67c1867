package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFeedbackRepo struct{ mock.Mock }

func (m *MockFeedbackRepo) Create(ctx context.Context, userID int, category, message string) (*Feedback, error) {
	args := m.Called(ctx, userID, category, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) List(ctx context.Context) ([]Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func setupFeedbackRouter(repo Repository, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(repo)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.POST("/feedback", handler.Submit)
	router.GET("/admin/feedback", handler.List)
	router.PATCH("/admin/feedback/:feedbackID/status", handler.UpdateStatus)
	return router
}

func TestSubmitFeedback(t *testing.T) {
	repo := new(MockFeedbackRepo)
	router := setupFeedbackRouter(repo, 1)

	repo.On("Create", mock.Anything, 1, "Equipment", "Broken treadmill").
		Return(&Feedback{ID: 1, UserID: 1, Category: "Equipment", Status: StatusReceived, SubmittedAt: time.Now()}, nil)

	body, _ := json.Marshal(SubmitFeedbackRequest{Category: "Equipment", Message: "Broken treadmill"})
	req := httptest.NewRequest("POST", "/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), StatusReceived)
}

func TestSubmitFeedbackInvalidCategory(t *testing.T) {
	repo := new(MockFeedbackRepo)
	router := setupFeedbackRouter(repo, 1)

	req := httptest.NewRequest("POST", "/feedback",
		bytes.NewBufferString(`{"category":"Parking","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestListFeedback(t *testing.T) {
	repo := new(MockFeedbackRepo)
	router := setupFeedbackRouter(repo, 1)

	repo.On("List", mock.Anything).Return([]Feedback{{ID: 1, Category: "Staff"}}, nil)

	req := httptest.NewRequest("GET", "/admin/feedback", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Staff")
}

func TestUpdateFeedbackStatus(t *testing.T) {
	repo := new(MockFeedbackRepo)
	router := setupFeedbackRouter(repo, 1)

	repo.On("UpdateStatus", mock.Anything, 5, "In Progress").Return(nil)

	req := httptest.NewRequest("PATCH", "/admin/feedback/5/status",
		bytes.NewBufferString(`{"status":"In Progress"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateFeedbackStatusNotFound(t *testing.T) {
	repo := new(MockFeedbackRepo)
	router := setupFeedbackRouter(repo, 1)

	repo.On("UpdateStatus", mock.Anything, 99, "Resolved").Return(ErrFeedbackNotFound)

	req := httptest.NewRequest("PATCH", "/admin/feedback/99/status",
		bytes.NewBufferString(`{"status":"Resolved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFeedbackStatusInvalidValue(t *testing.T) {
	repo := new(MockFeedbackRepo)
	router := setupFeedbackRouter(repo, 1)

	req := httptest.NewRequest("PATCH", "/admin/feedback/5/status",
		bytes.NewBufferString(`{"status":"Done"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "UpdateStatus")
}
