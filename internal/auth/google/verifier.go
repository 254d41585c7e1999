package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget/internal/auth"
	"budget/internal/core"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
)

// Issuer is the Google OpenID Connect issuer.
const Issuer = "https://accounts.google.com"

// Verifier validates Google-issued ID tokens against a client ID using
// the issuer's published JWKS.
type Verifier struct {
	verifier *gooidc.IDTokenVerifier
}

var _ auth.TokenVerifier = (*Verifier)(nil)

// New discovers the Google OIDC configuration and returns a verifier
// bound to the given OAuth client ID.
func New(ctx context.Context, clientID string) (*Verifier, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, errors.New("client ID is required")
	}
	provider, err := gooidc.NewProvider(ctx, Issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	return &Verifier{verifier: provider.Verifier(&gooidc.Config{ClientID: clientID})}, nil
}

// Verify checks the token's signature, issuer, audience and expiry, and
// returns the identity claims. Any verification failure surfaces as
// core.ErrInvalidToken.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (auth.Identity, error) {
	if strings.TrimSpace(rawToken) == "" {
		return auth.Identity{}, fmt.Errorf("%w: empty token", core.ErrInvalidToken)
	}

	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: %v", core.ErrInvalidToken, err)
	}

	var claims struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return auth.Identity{}, fmt.Errorf("%w: parse claims: %v", core.ErrInvalidToken, err)
	}

	return auth.Identity{Name: claims.Name, Email: claims.Email, Picture: claims.Picture}, nil
}
