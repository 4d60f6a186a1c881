package auth

import (
	"context"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
)

// Logout revokes the session bound to a refresh token. It is idempotent:
// an unknown or already revoked token is not an error.
type Logout struct {
	sessions ports.SessionStore
}

func NewLogout(sessions ports.SessionStore) *Logout {
	return &Logout{sessions: sessions}
}

func (uc *Logout) Execute(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return uc.sessions.Delete(ctx, HashToken(refreshToken))
}
