package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/persistence/db"
)

const (
	upsertProfileSQL = `INSERT INTO profiles (id, user_id, display_name, bio, picture_name, picture_path, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id) DO UPDATE SET
	display_name = EXCLUDED.display_name,
	bio = EXCLUDED.bio,
	picture_name = EXCLUDED.picture_name,
	picture_path = EXCLUDED.picture_path,
	updated_at = EXCLUDED.updated_at`
	selectProfileSQL = `SELECT id, user_id, display_name, bio, picture_name, picture_path, created_at, updated_at
FROM profiles WHERE user_id = $1`
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	_, err := r.pool.Exec(ctx, upsertProfileSQL,
		profile.ID, profile.UserID.UUID, profile.DisplayName, profile.Bio,
		profile.PictureName, profile.PicturePath, profile.CreatedAt, profile.UpdatedAt)
	return err
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	var p db.Profile
	err := r.pool.QueryRow(ctx, selectProfileSQL, userID.UUID).
		Scan(&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.PictureName, &p.PicturePath, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Profile{
		ID:          p.ID,
		UserID:      domain.NewUserID(p.UserID),
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		PictureName: p.PictureName,
		PicturePath: p.PicturePath,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

// Ensure ProfileRepository implements ports.ProfileRepository.
var _ ports.ProfileRepository = (*ProfileRepository)(nil)
