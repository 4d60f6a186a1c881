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

const selectCommentSQL = `SELECT id, meme_id, user_id, body, created_at, updated_at FROM comments`

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO comments (id, meme_id, user_id, body, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID.UUID, comment.MemeID.UUID, comment.UserID.UUID, comment.Body, comment.CreatedAt, comment.UpdatedAt)
	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, selectCommentSQL+` WHERE id = $1`, id.UUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) ListByMeme(ctx context.Context, memeID domain.MemeID) ([]*domain.Comment, error) {
	rows, err := r.pool.Query(ctx, selectCommentSQL+` WHERE meme_id = $1 ORDER BY created_at`, memeID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := []*domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) UpdateBody(ctx context.Context, id domain.CommentID, body string) error {
	_, err := r.pool.Exec(ctx, `UPDATE comments SET body = $1, updated_at = NOW() WHERE id = $2`, body, id.UUID)
	return err
}

func (r *CommentRepository) Delete(ctx context.Context, id domain.CommentID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id.UUID)
	return err
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c db.Comment
	if err := row.Scan(&c.ID, &c.MemeID, &c.UserID, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &domain.Comment{
		ID:        domain.NewCommentID(c.ID),
		MemeID:    domain.NewMemeID(c.MemeID),
		UserID:    domain.NewUserID(c.UserID),
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

// Ensure CommentRepository implements ports.CommentRepository.
var _ ports.CommentRepository = (*CommentRepository)(nil)
