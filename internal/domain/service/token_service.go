package service

// TokenService defines the interface for issuing and verifying the bearer
// tokens that authenticate every request. Tokens are stateless: there is no
// server-side revocation, and logout is a client-side no-op.
type TokenService interface {
	// Issue produces a signed token carrying the user's email as its identity
	// claim, expiring after the configured validity window.
	Issue(email string) (string, error)

	// Verify checks the token's signature and expiry (no grace period) and
	// returns the identity claim. Malformed, forged and expired tokens all
	// collapse into the same invalid-token error so callers treat them alike.
	Verify(token string) (email string, err error)
}
