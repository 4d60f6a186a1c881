package memes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

// Comments manages the first level of the comment tree.
type Comments struct {
	memes    ports.MemeRepository
	comments ports.CommentRepository
}

func NewComments(memes ports.MemeRepository, comments ports.CommentRepository) *Comments {
	return &Comments{memes: memes, comments: comments}
}

func (uc *Comments) Add(ctx context.Context, memeID domain.MemeID, author domain.UserID, body string) (*domain.Comment, error) {
	meme, err := uc.memes.GetByID(ctx, memeID)
	if err != nil {
		return nil, err
	}
	if meme == nil {
		return nil, domerrors.ErrMemeNotFound
	}
	now := time.Now()
	comment := &domain.Comment{
		ID:        domain.NewCommentID(uuid.New()),
		MemeID:    memeID,
		UserID:    author,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *Comments) ListForMeme(ctx context.Context, memeID domain.MemeID) ([]*domain.Comment, error) {
	meme, err := uc.memes.GetByID(ctx, memeID)
	if err != nil {
		return nil, err
	}
	if meme == nil {
		return nil, domerrors.ErrMemeNotFound
	}
	return uc.comments.ListByMeme(ctx, memeID)
}

func (uc *Comments) Get(ctx context.Context, id domain.CommentID) (*domain.Comment, error) {
	comment, err := uc.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domerrors.ErrCommentNotFound
	}
	return comment, nil
}

// Edit updates the comment text in place; nothing else about a comment is mutable.
func (uc *Comments) Edit(ctx context.Context, id domain.CommentID, caller domain.UserID, body string) (*domain.Comment, error) {
	comment, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != caller {
		return nil, domerrors.ErrNotOwner
	}
	if err := uc.comments.UpdateBody(ctx, id, body); err != nil {
		return nil, err
	}
	comment.Body = body
	comment.UpdatedAt = time.Now()
	return comment, nil
}

// Delete detaches the comment from its meme and owner and takes its replies
// with it.
func (uc *Comments) Delete(ctx context.Context, id domain.CommentID, caller domain.UserID) (*domain.Comment, error) {
	comment, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != caller {
		return nil, domerrors.ErrNotOwner
	}
	if err := uc.comments.Delete(ctx, id); err != nil {
		return nil, err
	}
	return comment, nil
}
