package services

import (
	"context"
	"fmt"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
)

// OIDCVerifier checks ID tokens against the auth provider's published keys
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{
			ClientID:          clientID,
			SkipClientIDCheck: clientID == "",
		}),
	}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, token string) (models.Identity, error) {
	idToken, err := v.verifier.Verify(ctx, token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to verify ID token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return models.Identity{}, fmt.Errorf("failed to read ID token claims: %w", err)
	}

	userID, err := uuid.Parse(idToken.Subject)
	if err != nil {
		return models.Identity{}, fmt.Errorf("ID token subject is not a user id: %w", err)
	}
	return models.Identity{UserID: userID, Email: claims.Email, Name: claims.Name}, nil
}
