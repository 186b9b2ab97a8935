package review_controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/middleware"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewModerator interface {
	AdminList(ctx context.Context, status string, page, limit int) ([]models.Review, int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ReviewStatus) (models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var reviews ReviewModerator

func Init(repo ReviewModerator) {
	reviews = repo
}

// GetReviews godoc
// @Summary List reviews (CMS)
// @Tags Admin - Reviews
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending | approved | rejected" default(pending)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Review}
// @Failure 400 {object} models.ApiResponse "Invalid status"
// @Router /admin/reviews [get]
func GetReviews(c *gin.Context) {
	status := strings.ToLower(strings.TrimSpace(c.DefaultQuery("status", string(models.ReviewPending))))
	switch models.ReviewStatus(status) {
	case models.ReviewPending, models.ReviewApproved, models.ReviewRejected:
	case "all":
		status = ""
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status filter"))
		return
	}
	page, limit := controllers.Pagination(c, 20, 100)

	list, total, err := reviews.AdminList(c.Request.Context(), status, page, limit)
	if err != nil {
		controllers.RespondError(c, "admin-review", err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Reviews retrieved successfully", list,
		models.NewPagination(page, limit, total)))
}

// ModerateReview godoc
// @Summary Approve or reject a review (CMS)
// @Tags Admin - Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID (UUID)"
// @Param payload body models.ModerateReviewRequest true "Decision"
// @Success 200 {object} models.ApiResponse{data=models.Review}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Review not found"
// @Router /admin/reviews/{id} [patch]
func ModerateReview(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req models.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "status must be approved or rejected"))
		return
	}

	review, err := reviews.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		controllers.RespondError(c, "admin-review", err, "Failed to moderate review")
		return
	}
	c.Set(middleware.ActivityPayloadKey, gin.H{"status": review.Status})
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review updated successfully", review))
}

// DeleteReview godoc
// @Summary Delete review (CMS)
// @Tags Admin - Reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Review not found"
// @Router /admin/reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	id, ok := controllers.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := reviews.Delete(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, "admin-review", err, "Failed to delete review")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review deleted successfully", gin.H{"id": id}))
}
