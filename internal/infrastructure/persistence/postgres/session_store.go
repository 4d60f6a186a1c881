package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/persistence/db"
)

// SessionStore persists refresh sessions. Rotation updates the existing row
// rather than inserting a fresh one, so each login keeps exactly one session
// record for its entire lifetime.
type SessionStore struct {
	pool *pgxpool.Pool
}

func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func (s *SessionStore) Store(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt time.Time) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at) VALUES ($1, $2, $3, $4, NOW())`,
		uuid.New(), userID.UUID, tokenHash, expiresAt)
	return err
}

func (s *SessionStore) Get(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var row db.Session
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, token_hash, expires_at, created_at FROM sessions WHERE token_hash = $1`, tokenHash).
		Scan(&row.ID, &row.UserID, &row.TokenHash, &row.ExpiresAt, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Session{
		ID:        row.ID,
		UserID:    domain.NewUserID(row.UserID),
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (s *SessionStore) Rotate(ctx context.Context, oldHash, newHash string, expiresAt time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sessions SET token_hash = $1, expires_at = $2 WHERE token_hash = $3`,
		newHash, expiresAt, oldHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Lost a race with logout; the session is gone, so the rotation fails.
		return domerrors.ErrInvalidToken
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenHash string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash)
	return err
}

// Ensure SessionStore implements ports.SessionStore.
var _ ports.SessionStore = (*SessionStore)(nil)
