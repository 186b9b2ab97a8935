package activity_controller

import (
	"context"
	"net/http"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/gin-gonic/gin"
)

type ActivityLister interface {
	List(ctx context.Context, page, limit int) ([]models.ActivityLog, int64, error)
}

var activity ActivityLister

func Init(lister ActivityLister) {
	activity = lister
}

// GetActivityLogs godoc
// @Summary Admin activity log (CMS)
// @Description Most recent admin mutations first
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/activity [get]
func GetActivityLogs(c *gin.Context) {
	page, limit := controllers.Pagination(c, 50, 200)
	logs, total, err := activity.List(c.Request.Context(), page, limit)
	if err != nil {
		controllers.RespondError(c, "admin-activity", err, "Failed to fetch activity logs")
		return
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved successfully", logs,
		models.NewPagination(page, limit, total)))
}
