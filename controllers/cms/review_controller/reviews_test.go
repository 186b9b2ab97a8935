package review_controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockModerator struct{ mock.Mock }

func (m *mockModerator) AdminList(ctx context.Context, status string, page, limit int) ([]models.Review, int64, error) {
	args := m.Called(ctx, status, page, limit)
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *mockModerator) SetStatus(ctx context.Context, id uuid.UUID, status models.ReviewStatus) (models.Review, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.Review), args.Error(1)
}

func (m *mockModerator) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(repo *mockModerator) *gin.Engine {
	Init(repo)
	r := gin.New()
	r.GET("/reviews", GetReviews)
	r.PATCH("/reviews/:id", ModerateReview)
	r.DELETE("/reviews/:id", DeleteReview)
	return r
}

func send(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetReviewsStatusFilter(t *testing.T) {
	repo := new(mockModerator)
	repo.On("AdminList", mock.Anything, "pending", 1, 20).Return([]models.Review{}, int64(0), nil)
	repo.On("AdminList", mock.Anything, "", 1, 20).Return([]models.Review{}, int64(0), nil)
	repo.On("AdminList", mock.Anything, "approved", 1, 20).Return([]models.Review{}, int64(0), nil)
	r := setupRouter(repo)

	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/reviews", "").Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/reviews?status=all", "").Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/reviews?status=Approved", "").Code)
	assert.Equal(t, http.StatusBadRequest, send(r, http.MethodGet, "/reviews?status=spam", "").Code)
	repo.AssertExpectations(t)
}

func TestModerateReview(t *testing.T) {
	id := uuid.New()
	repo := new(mockModerator)
	repo.On("SetStatus", mock.Anything, id, models.ReviewApproved).
		Return(models.Review{ID: id, Status: models.ReviewApproved}, nil)
	missing := uuid.New()
	repo.On("SetStatus", mock.Anything, missing, models.ReviewRejected).
		Return(models.Review{}, utils.NewNotFoundError("Review not found"))
	r := setupRouter(repo)

	w := send(r, http.MethodPatch, "/reviews/"+id.String(), `{"status": "approved"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)

	assert.Equal(t, http.StatusBadRequest, send(r, http.MethodPatch, "/reviews/"+id.String(), `{"status": "pending"}`).Code)
	assert.Equal(t, http.StatusNotFound, send(r, http.MethodPatch, "/reviews/"+missing.String(), `{"status": "rejected"}`).Code)
}

func TestDeleteReview(t *testing.T) {
	id := uuid.New()
	repo := new(mockModerator)
	repo.On("Delete", mock.Anything, id).Return(nil)
	r := setupRouter(repo)

	assert.Equal(t, http.StatusOK, send(r, http.MethodDelete, "/reviews/"+id.String(), "").Code)
	repo.AssertCalled(t, "Delete", mock.Anything, id)
}
