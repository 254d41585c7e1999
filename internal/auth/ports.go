package auth

import "context"

// Identity is the verified principal extracted from an identity token.
type Identity struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// TokenVerifier validates an externally issued identity token. Verification
// is stateless; binding the result into a session is the caller's job.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (Identity, error)
}
