// Package controllers holds helpers shared by the ecommerce and cms handlers
package controllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RespondError answers with the status mapped from err. 5xx causes are only
// logged; the client gets fallback.
func RespondError(c *gin.Context, component string, err error, fallback string) {
	status := utils.StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("component", component).Str("path", c.FullPath()).Msg(fallback)
	}
	c.JSON(status, models.ErrorResponse(c, utils.PublicMessage(err, fallback)))
}

// ParseIDParam reads a uuid path parameter, answering 400 when it is malformed
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// Pagination reads page and limit with defaults, capping limit at maxLimit
func Pagination(c *gin.Context, defaultLimit, maxLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	// keeps (page-1)*limit from wrapping negative
	if page-1 > math.MaxInt/limit {
		page = math.MaxInt/limit + 1
	}
	return page, limit
}
