package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/persistence/db"
)

const (
	insertMemeSQL = `INSERT INTO memes (id, user_id, fingerprint, file_name, file_path, name, description, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	selectMemeSQL = `SELECT id, user_id, fingerprint, file_name, file_path, name, description, tags, created_at, updated_at FROM memes`
)

type MemeRepository struct {
	pool *pgxpool.Pool
}

func NewMemeRepository(pool *pgxpool.Pool) *MemeRepository {
	return &MemeRepository{pool: pool}
}

func (r *MemeRepository) Create(ctx context.Context, meme *domain.Meme) error {
	tags := meme.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := r.pool.Exec(ctx, insertMemeSQL,
		meme.ID.UUID, meme.UserID.UUID, meme.Fingerprint, meme.FileName, meme.FilePath,
		meme.Name, meme.Description, tags, meme.CreatedAt, meme.UpdatedAt)
	if err != nil {
		// The unique index is the real dedup enforcement point; the handler's
		// pre-check only loses races.
		switch {
		case uniqueViolation(err, "memes_fingerprint_key"):
			return domerrors.ErrDuplicateContent
		case uniqueViolation(err, "memes_name_key"):
			return domerrors.ErrMemeNameTaken
		}
		return err
	}
	return nil
}

func (r *MemeRepository) GetByID(ctx context.Context, id domain.MemeID) (*domain.Meme, error) {
	return r.getOne(ctx, selectMemeSQL+` WHERE id = $1`, id.UUID)
}

func (r *MemeRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*domain.Meme, error) {
	return r.getOne(ctx, selectMemeSQL+` WHERE fingerprint = $1`, fingerprint)
}

func (r *MemeRepository) GetByName(ctx context.Context, name string) (*domain.Meme, error) {
	return r.getOne(ctx, selectMemeSQL+` WHERE name = $1`, name)
}

func (r *MemeRepository) List(ctx context.Context) ([]*domain.Meme, error) {
	rows, err := r.pool.Query(ctx, selectMemeSQL+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	memes := []*domain.Meme{}
	for rows.Next() {
		m, err := scanMeme(rows)
		if err != nil {
			return nil, err
		}
		memes = append(memes, m)
	}
	return memes, rows.Err()
}

func (r *MemeRepository) ListIDsByUser(ctx context.Context, userID domain.UserID) ([]domain.MemeID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM memes WHERE user_id = $1 ORDER BY created_at`, userID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []domain.MemeID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, domain.NewMemeID(id))
	}
	return ids, rows.Err()
}

func (r *MemeRepository) Delete(ctx context.Context, id domain.MemeID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM memes WHERE id = $1`, id.UUID)
	return err
}

func (r *MemeRepository) getOne(ctx context.Context, query string, arg any) (*domain.Meme, error) {
	m, err := scanMeme(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func scanMeme(row pgx.Row) (*domain.Meme, error) {
	var m db.Meme
	err := row.Scan(&m.ID, &m.UserID, &m.Fingerprint, &m.FileName, &m.FilePath,
		&m.Name, &m.Description, &m.Tags, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Meme{
		ID:          domain.NewMemeID(m.ID),
		UserID:      domain.NewUserID(m.UserID),
		Fingerprint: m.Fingerprint,
		FileName:    m.FileName,
		FilePath:    m.FilePath,
		Name:        m.Name,
		Description: m.Description,
		Tags:        m.Tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// Ensure MemeRepository implements ports.MemeRepository.
var _ ports.MemeRepository = (*MemeRepository)(nil)
