package services

import (
	"context"
	"testing"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", "")
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", "strevo")
	require.NoError(t, err)
	userID := uuid.New()

	token, err := svc.Generate(userID, "asha@example.com", "Asha", time.Hour)
	require.NoError(t, err)

	id, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: userID, Email: "asha@example.com", Name: "Asha"}, id)
}

func TestJWTService_Rejects(t *testing.T) {
	svc, err := NewJWTService("test-secret", "strevo")
	require.NoError(t, err)
	other, err := NewJWTService("other-secret", "strevo")
	require.NoError(t, err)
	userID := uuid.New()

	t.Run("expired", func(t *testing.T) {
		token, err := svc.Generate(userID, "a@b.co", "", -time.Minute)
		require.NoError(t, err)
		_, err = svc.Verify(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := other.Generate(userID, "a@b.co", "", time.Hour)
		require.NoError(t, err)
		_, err = svc.Verify(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		foreign, err := NewJWTService("test-secret", "someone-else")
		require.NoError(t, err)
		token, err := foreign.Generate(userID, "a@b.co", "", time.Hour)
		require.NoError(t, err)
		_, err = svc.Verify(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("subject not a uuid", func(t *testing.T) {
		claims := UserClaims{
			Email: "a@b.co",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-42",
				Issuer:    "strevo",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = svc.Verify(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify(context.Background(), "not.a.token")
		assert.Error(t, err)
	})
}

func TestChainVerifier(t *testing.T) {
	first, _ := NewJWTService("first", "")
	second, _ := NewJWTService("second", "")
	chain := ChainVerifier{first, second}
	userID := uuid.New()

	token, err := second.Generate(userID, "a@b.co", "", time.Hour)
	require.NoError(t, err)

	id, err := chain.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, id.UserID)

	_, err = ChainVerifier{}.Verify(context.Background(), token)
	assert.Error(t, err)
}
