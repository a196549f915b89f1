package ports

// TokenClaims is the payload carried by a verified bearer token.
type TokenClaims struct {
	UserID string
	Login  string
}

// TokenService issues and verifies signed, expiring bearer tokens.
type TokenService interface {
	Issue(userID, login string) (string, error)
	// Verify returns the claims of a valid token. Any defect — bad signature,
	// wrong algorithm, malformed token, past expiry — yields
	// domain.ErrInvalidCredentials.
	Verify(token string) (*TokenClaims, error)
}
