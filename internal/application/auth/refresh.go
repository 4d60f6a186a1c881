package auth

import (
	"context"
	"time"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

type RefreshInput struct {
	RefreshToken string
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	// UserID of the session owner, for audit logging.
	UserID string
}

// Refresh rotates a session: the presented token must both match a persisted
// session record and carry a valid signature, and on success the record's
// token hash is overwritten so the old string never validates again.
type Refresh struct {
	issuer     ports.TokenIssuer
	sessions   ports.SessionStore
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewRefresh(issuer ports.TokenIssuer, sessions ports.SessionStore, accessTTL, refreshTTL time.Duration) *Refresh {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenExpiry
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenExpiry
	}
	return &Refresh{
		issuer:     issuer,
		sessions:   sessions,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (uc *Refresh) Execute(ctx context.Context, input RefreshInput) (*RefreshResult, error) {
	if input.RefreshToken == "" {
		return nil, domerrors.ErrInvalidToken
	}
	oldHash := HashToken(input.RefreshToken)
	session, err := uc.sessions.Get(ctx, oldHash)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(time.Now()) {
		return nil, domerrors.ErrInvalidToken
	}
	userID, err := uc.issuer.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domerrors.ErrInvalidToken
	}
	accessToken, err := uc.issuer.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}
	newRefresh, err := uc.issuer.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(uc.refreshTTL)
	if err := uc.sessions.Rotate(ctx, oldHash, HashToken(newRefresh), expiresAt); err != nil {
		return nil, err
	}
	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresIn:    int64(uc.accessTTL.Seconds()),
		UserID:       userID,
	}, nil
}
