package search_controller

import (
	"net/http"
	"strconv"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/controllers"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var suggestService *services.SuggestService

func Init(s *services.SuggestService) {
	suggestService = s
}

// Suggest godoc
// @Summary Search suggestions
// @Description Autocomplete over active products. An empty query returns the popular list.
// @Tags Storefront - Search
// @Produce json
// @Param q query string false "Query"
// @Param limit query int false "Max suggestions (1-12)" default(6)
// @Param prefetch query string false "Set to 1 when the request is a hover prefetch"
// @Success 200 {object} models.SuggestResponse
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /search/suggest [get]
func Suggest(c *gin.Context) {
	timer := utils.NewStageTimer()

	var q models.SuggestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.Debug().Err(err).Str("component", "suggest").Msg("unreadable query, using defaults")
	}
	limit := services.ParseSuggestLimit(q.Limit)

	res, err := suggestService.Suggest(c.Request.Context(), q.Q, limit, timer)
	c.Header("Server-Timing", timer.Header())
	if err != nil {
		c.Header("X-Cache-Status", string(models.CacheMiss))
		c.Header("Cache-Control", "no-store")
		controllers.RespondError(c, "suggest", err, "Failed to load suggestions")
		return
	}

	cacheControl := "public, s-maxage=" + strconv.Itoa(int(res.TTL.Seconds()))
	if q.Prefetch == "1" {
		cacheControl += ", max-age=30"
	}
	c.Header("Cache-Control", cacheControl)
	c.Header("X-Cache-Status", string(res.Cache))

	suggestions := res.Suggestions
	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	c.JSON(http.StatusOK, models.SuggestResponse{
		Suggestions: suggestions,
		Cache:       res.Cache,
		TimeMs:      timer.ElapsedMs(),
	})
}
