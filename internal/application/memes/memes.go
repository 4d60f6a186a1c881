package memes

import (
	"context"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

// Memes covers the read and delete side of the meme collection.
type Memes struct {
	memes ports.MemeRepository
	files ports.FileStore
}

func NewMemes(memes ports.MemeRepository, files ports.FileStore) *Memes {
	return &Memes{memes: memes, files: files}
}

func (uc *Memes) List(ctx context.Context) ([]*domain.Meme, error) {
	return uc.memes.List(ctx)
}

func (uc *Memes) Get(ctx context.Context, id domain.MemeID) (*domain.Meme, error) {
	meme, err := uc.memes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if meme == nil {
		return nil, domerrors.ErrMemeNotFound
	}
	return meme, nil
}

// Delete removes a meme, its stored file, and (via the schema's cascade) its
// comment tree. Only the owner may delete.
func (uc *Memes) Delete(ctx context.Context, id domain.MemeID, caller domain.UserID) (*domain.Meme, error) {
	meme, err := uc.memes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if meme == nil {
		return nil, domerrors.ErrMemeNotFound
	}
	if meme.UserID != caller {
		return nil, domerrors.ErrNotOwner
	}
	if err := uc.memes.Delete(ctx, id); err != nil {
		return nil, err
	}
	_ = uc.files.Remove(meme.FilePath)
	return meme, nil
}
