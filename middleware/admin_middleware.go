package middleware

import (
	"context"
	"net/http"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AdminChecker reports whether a user carries the admin flag
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AdminAuthMiddleware verifies the token and requires profiles.is_admin.
// Every failure is a 401.
func AdminAuthMiddleware(verifier TokenVerifier, admins AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.TokenFromRequest(c, SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Info().Err(err).Str("component", "admin-auth").Msg("invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			return
		}

		isAdmin, err := admins.IsAdmin(c.Request.Context(), identity.UserID)
		if err != nil {
			log.Error().Err(err).Str("component", "admin-auth").Msg("admin lookup failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}
		if !isAdmin {
			log.Info().Str("component", "admin-auth").Str("user_id", identity.UserID.String()).Msg("non-admin attempted admin route")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin access required"))
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}
