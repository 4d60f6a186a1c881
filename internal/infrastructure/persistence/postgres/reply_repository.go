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

const selectReplySQL = `SELECT id, comment_id, user_id, body, created_at, updated_at FROM replies`

type ReplyRepository struct {
	pool *pgxpool.Pool
}

func NewReplyRepository(pool *pgxpool.Pool) *ReplyRepository {
	return &ReplyRepository{pool: pool}
}

func (r *ReplyRepository) Create(ctx context.Context, reply *domain.Reply) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO replies (id, comment_id, user_id, body, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		reply.ID.UUID, reply.CommentID.UUID, reply.UserID.UUID, reply.Body, reply.CreatedAt, reply.UpdatedAt)
	return err
}

func (r *ReplyRepository) GetByID(ctx context.Context, id domain.ReplyID) (*domain.Reply, error) {
	rep, err := scanReply(r.pool.QueryRow(ctx, selectReplySQL+` WHERE id = $1`, id.UUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rep, nil
}

func (r *ReplyRepository) ListByComment(ctx context.Context, commentID domain.CommentID) ([]*domain.Reply, error) {
	rows, err := r.pool.Query(ctx, selectReplySQL+` WHERE comment_id = $1 ORDER BY created_at`, commentID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	replies := []*domain.Reply{}
	for rows.Next() {
		rep, err := scanReply(rows)
		if err != nil {
			return nil, err
		}
		replies = append(replies, rep)
	}
	return replies, rows.Err()
}

func (r *ReplyRepository) UpdateBody(ctx context.Context, id domain.ReplyID, body string) error {
	_, err := r.pool.Exec(ctx, `UPDATE replies SET body = $1, updated_at = NOW() WHERE id = $2`, body, id.UUID)
	return err
}

func (r *ReplyRepository) Delete(ctx context.Context, id domain.ReplyID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM replies WHERE id = $1`, id.UUID)
	return err
}

func scanReply(row pgx.Row) (*domain.Reply, error) {
	var rep db.Reply
	if err := row.Scan(&rep.ID, &rep.CommentID, &rep.UserID, &rep.Body, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
		return nil, err
	}
	return &domain.Reply{
		ID:        domain.NewReplyID(rep.ID),
		CommentID: domain.NewCommentID(rep.CommentID),
		UserID:    domain.NewUserID(rep.UserID),
		Body:      rep.Body,
		CreatedAt: rep.CreatedAt,
		UpdatedAt: rep.UpdatedAt,
	}, nil
}

// Ensure ReplyRepository implements ports.ReplyRepository.
var _ ports.ReplyRepository = (*ReplyRepository)(nil)
