package middleware

import (
	"net/http"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/gin-gonic/gin"
)

// Handlers may set these keys to enrich the activity entry
const (
	ActivityResourceIDKey = "activityResourceID"
	ActivityPayloadKey    = "activityPayload"
)

var pathToResourceType = map[string]string{
	"products":  models.ResourceTypeProduct,
	"orders":    models.ResourceTypeOrder,
	"discounts": models.ResourceTypeDiscount,
	"reviews":   models.ResourceTypeReview,
}

var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// ActivityLoggingMiddleware records every admin mutation after it ran.
// Must be used after AdminAuthMiddleware.
func ActivityLoggingMiddleware(activity *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, mutating := methodToActionVerb[c.Request.Method]
		if !mutating {
			c.Next()
			return
		}

		c.Next()

		identity, ok := GetIdentity(c)
		if !ok {
			return
		}
		route := c.FullPath()
		resourceType := resourceTypeFromPath(route)
		if resourceType == "" {
			return
		}

		resourceID := c.Param("id")
		if v, ok := c.Get(ActivityResourceIDKey); ok {
			if s, ok := v.(string); ok {
				resourceID = s
			}
		}
		payload, _ := c.Get(ActivityPayloadKey)

		activity.LogActivity(services.LogActivityRequest{
			AdminID:      identity.UserID,
			AdminEmail:   identity.Email,
			Action:       actionName(route, verb, resourceType),
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Path:         c.Request.URL.Path,
			Payload:      payload,
			StatusCode:   c.Writer.Status(),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		})
	}
}

// resourceTypeFromPath finds the resource segment, e.g.
// "/api/admin/orders/:id/status" → "order"
func resourceTypeFromPath(route string) string {
	parts := strings.Split(route, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if rt, ok := pathToResourceType[parts[i]]; ok {
			return rt
		}
	}
	return ""
}

// actionName is verb_resource, or bulk_<op>_resource for the bulk routes
func actionName(route, verb, resourceType string) string {
	parts := strings.Split(strings.Trim(route, "/"), "/")
	for i, p := range parts {
		if p == "bulk" && i+1 < len(parts) {
			return "bulk_" + parts[i+1] + "_" + resourceType
		}
	}
	return verb + "_" + resourceType
}
