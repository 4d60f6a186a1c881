package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
)

const (
	insertFollowSQL = `INSERT INTO follows (follower_id, followee_id, created_at)
VALUES ($1, $2, NOW()) ON CONFLICT DO NOTHING`
	deleteFollowSQL    = `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	selectFollowersSQL = `SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY created_at`
	selectFollowingSQL = `SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY created_at`
)

// FollowRepository stores follow edges as single rows; both directions of the
// relationship read from the same row, which keeps follower/following sets
// consistent without any two-document bookkeeping.
type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

func (r *FollowRepository) Add(ctx context.Context, follower, followee domain.UserID) error {
	_, err := r.pool.Exec(ctx, insertFollowSQL, follower.UUID, followee.UUID)
	return err
}

func (r *FollowRepository) Remove(ctx context.Context, follower, followee domain.UserID) error {
	_, err := r.pool.Exec(ctx, deleteFollowSQL, follower.UUID, followee.UUID)
	return err
}

func (r *FollowRepository) Followers(ctx context.Context, userID domain.UserID) ([]domain.UserID, error) {
	return r.listIDs(ctx, selectFollowersSQL, userID)
}

func (r *FollowRepository) Following(ctx context.Context, userID domain.UserID) ([]domain.UserID, error) {
	return r.listIDs(ctx, selectFollowingSQL, userID)
}

func (r *FollowRepository) listIDs(ctx context.Context, query string, userID domain.UserID) ([]domain.UserID, error) {
	rows, err := r.pool.Query(ctx, query, userID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []domain.UserID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, domain.NewUserID(id))
	}
	return ids, rows.Err()
}

// Ensure FollowRepository implements ports.FollowRepository.
var _ ports.FollowRepository = (*FollowRepository)(nil)
