package memes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

// Replies manages the second and final level of the comment tree. Replies
// attach to comments only; there is no reply-to-reply.
type Replies struct {
	comments ports.CommentRepository
	replies  ports.ReplyRepository
}

func NewReplies(comments ports.CommentRepository, replies ports.ReplyRepository) *Replies {
	return &Replies{comments: comments, replies: replies}
}

func (uc *Replies) Add(ctx context.Context, commentID domain.CommentID, author domain.UserID, body string) (*domain.Reply, error) {
	comment, err := uc.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domerrors.ErrCommentNotFound
	}
	now := time.Now()
	reply := &domain.Reply{
		ID:        domain.NewReplyID(uuid.New()),
		CommentID: commentID,
		UserID:    author,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.replies.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (uc *Replies) ListForComment(ctx context.Context, commentID domain.CommentID) ([]*domain.Reply, error) {
	comment, err := uc.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domerrors.ErrCommentNotFound
	}
	return uc.replies.ListByComment(ctx, commentID)
}

func (uc *Replies) Get(ctx context.Context, id domain.ReplyID) (*domain.Reply, error) {
	reply, err := uc.replies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, domerrors.ErrReplyNotFound
	}
	return reply, nil
}

func (uc *Replies) Edit(ctx context.Context, id domain.ReplyID, caller domain.UserID, body string) (*domain.Reply, error) {
	reply, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if reply.UserID != caller {
		return nil, domerrors.ErrNotOwner
	}
	if err := uc.replies.UpdateBody(ctx, id, body); err != nil {
		return nil, err
	}
	reply.Body = body
	reply.UpdatedAt = time.Now()
	return reply, nil
}

func (uc *Replies) Delete(ctx context.Context, id domain.ReplyID, caller domain.UserID) (*domain.Reply, error) {
	reply, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if reply.UserID != caller {
		return nil, domerrors.ErrNotOwner
	}
	if err := uc.replies.Delete(ctx, id); err != nil {
		return nil, err
	}
	return reply, nil
}
