package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenVerifier turns a bearer token into the caller's identity
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (models.Identity, error)
}

// UserClaims is the payload of tokens issued by the hosted auth provider.
// The subject is the user's id.
type UserClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService verifies HS256 tokens signed with the shared project secret
type JWTService struct {
	secretKey []byte
	issuer    string
}

func NewJWTService(secretKey, issuer string) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	return &JWTService{secretKey: []byte(secretKey), issuer: issuer}, nil
}

// Generate mints a token for userID; used by the seed tool and tests
func (j *JWTService) Generate(userID uuid.UUID, email, name string, ttl time.Duration) (string, error) {
	if userID == uuid.Nil || email == "" {
		return "", errors.New("userID and email cannot be empty")
	}

	now := time.Now()
	claims := UserClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (j *JWTService) Verify(_ context.Context, tokenString string) (models.Identity, error) {
	claims := &UserClaims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return models.Identity{}, errors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Identity{}, errors.New("token subject is not a user id")
	}
	if claims.Email == "" {
		return models.Identity{}, errors.New("token missing email claim")
	}
	return models.Identity{UserID: userID, Email: claims.Email, Name: claims.Name}, nil
}

// ChainVerifier accepts a token if any of its verifiers does
type ChainVerifier []TokenVerifier

func (c ChainVerifier) Verify(ctx context.Context, token string) (models.Identity, error) {
	var errs []error
	for _, v := range c {
		id, err := v.Verify(ctx, token)
		if err == nil {
			return id, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return models.Identity{}, errors.New("no token verifier configured")
	}
	return models.Identity{}, errors.Join(errs...)
}
