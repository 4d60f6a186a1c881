package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

const (
	DefaultAccessTokenExpiry  = 15 * time.Minute
	DefaultRefreshTokenExpiry = 30 * 24 * time.Hour
)

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime, seconds
	User         *domain.User
}

// Login verifies the password and issues the access/refresh pair, persisting
// a session record for the refresh side. An unknown username and a wrong
// password fail differently on purpose: the first is ErrAccountNotFound, the
// second ErrWrongPassword.
type Login struct {
	users      ports.UserRepository
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	sessions   ports.SessionStore
	refreshTTL time.Duration
	accessTTL  time.Duration
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, sessions ports.SessionStore, accessTTL, refreshTTL time.Duration) *Login {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenExpiry
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenExpiry
	}
	return &Login{
		users:      users,
		hasher:     hasher,
		issuer:     issuer,
		sessions:   sessions,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrAccountNotFound
	}
	if !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrWrongPassword
	}
	accessToken, err := uc.issuer.IssueAccessToken(user.ID.String())
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.issuer.IssueRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(uc.refreshTTL)
	if err := uc.sessions.Store(ctx, user.ID, HashToken(refreshToken), expiresAt); err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(uc.accessTTL.Seconds()),
		User:         user,
	}, nil
}

// HashToken returns the value stored for refresh token lookup. Only the
// SHA-256 of the token ever reaches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
