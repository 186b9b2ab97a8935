package middleware

import (
	"context"
	"net/http"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SessionCookie is the cookie the storefront keeps the access token in
const SessionCookie = "sb-access-token"

const identityKey = "identity"

// TokenVerifier turns a bearer token into the caller's identity
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (models.Identity, error)
}

// AuthMiddleware validates the token from the session cookie or Authorization header
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.TokenFromRequest(c, SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Debug().Err(err).Str("component", "auth").Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// GetIdentity returns the identity stored by AuthMiddleware or AdminAuthMiddleware
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}

// SetIdentity stores the verified caller on the request context
func SetIdentity(c *gin.Context, identity models.Identity) {
	c.Set(identityKey, identity)
}
