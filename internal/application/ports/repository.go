package ports

import (
	"context"
	"time"

	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
)

// UserRepository persists accounts. Lookups return (nil, nil) when the user
// does not exist so callers can distinguish absence from storage failure.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProfileRepository persists the public profile attached to each user.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID domain.UserID) (*domain.Profile, error)
}

// FollowRepository maintains the follow edge set. Add and Remove are
// idempotent: adding an existing edge or removing a missing one succeeds.
type FollowRepository interface {
	Add(ctx context.Context, follower, followee domain.UserID) error
	Remove(ctx context.Context, follower, followee domain.UserID) error
	Followers(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)
	Following(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)
}

// MemeRepository persists memes. Create must surface a fingerprint
// uniqueness violation as domain/errors.ErrDuplicateContent: the database
// constraint, not the caller's pre-check, is what actually guarantees dedup.
type MemeRepository interface {
	Create(ctx context.Context, meme *domain.Meme) error
	GetByID(ctx context.Context, id domain.MemeID) (*domain.Meme, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (*domain.Meme, error)
	GetByName(ctx context.Context, name string) (*domain.Meme, error)
	List(ctx context.Context) ([]*domain.Meme, error)
	ListIDsByUser(ctx context.Context, userID domain.UserID) ([]domain.MemeID, error)
	Delete(ctx context.Context, id domain.MemeID) error
}

// CommentRepository persists top-level comments on memes.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error)
	ListByMeme(ctx context.Context, memeID domain.MemeID) ([]*domain.Comment, error)
	UpdateBody(ctx context.Context, id domain.CommentID, body string) error
	Delete(ctx context.Context, id domain.CommentID) error
}

// ReplyRepository persists replies attached to comments.
type ReplyRepository interface {
	Create(ctx context.Context, reply *domain.Reply) error
	GetByID(ctx context.Context, id domain.ReplyID) (*domain.Reply, error)
	ListByComment(ctx context.Context, commentID domain.CommentID) ([]*domain.Reply, error)
	UpdateBody(ctx context.Context, id domain.ReplyID, body string) error
	Delete(ctx context.Context, id domain.ReplyID) error
}

// SessionStore persists refresh sessions keyed by token hash.
type SessionStore interface {
	// Store creates a session row for userID valid until expiresAt.
	Store(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt time.Time) error
	// Get returns the session for tokenHash, or (nil, nil) when absent.
	Get(ctx context.Context, tokenHash string) (*domain.Session, error)
	// Rotate swaps the session's token hash and expiry in place.
	Rotate(ctx context.Context, oldHash, newHash string, expiresAt time.Time) error
	// Delete removes the session for tokenHash. Missing rows are not an error.
	Delete(ctx context.Context, tokenHash string) error
}
