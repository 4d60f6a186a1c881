package ports

// PasswordHasher hashes and verifies passwords with a slow, salted scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// TokenIssuer mints and validates the two credential kinds: short-lived
// access tokens (verified by signature alone) and long-lived refresh tokens
// (additionally checked against the SessionStore by the caller).
type TokenIssuer interface {
	IssueAccessToken(userID string) (string, error)
	IssueRefreshToken(userID string) (string, error)
	ValidateAccessToken(token string) (userID string, err error)
	ValidateRefreshToken(token string) (userID string, err error)
}
