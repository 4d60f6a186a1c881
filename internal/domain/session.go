package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session binds a refresh token to a user. The token itself is never stored;
// TokenHash is the hex SHA-256 of the opaque refresh string. Rotation
// overwrites TokenHash and ExpiresAt in place, so a session keeps a single
// row for its whole life and the previous token string stops matching.
type Session struct {
	ID        uuid.UUID
	UserID    UserID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session's absolute expiry has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
