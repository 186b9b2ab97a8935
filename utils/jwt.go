package utils

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExtractTokenFromHeader extracts a bearer token from the Authorization header.
// Format: "Bearer <token>"
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", errors.New("token is empty")
	}

	return token, nil
}

// TokenFromRequest reads the session cookie first, then the Authorization header
func TokenFromRequest(c *gin.Context, cookieName string) (string, error) {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token, nil
	}
	return ExtractTokenFromHeader(c.GetHeader("Authorization"))
}
