package memes

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

type AddMemeInput struct {
	UserID      domain.UserID
	Name        string
	Description string
	Tags        []string
	FileName    string
	File        io.Reader
}

// AddMeme is the dedup gate. The file is written and fingerprinted first,
// then checked against known fingerprints; a duplicate discards the stored
// bytes and fails with ErrDuplicateContent. The lookup before insert is an
// optimization only: the unique index on the fingerprint column is what
// rejects the loser when two identical uploads race past the check.
type AddMeme struct {
	memes ports.MemeRepository
	files ports.FileStore
}

func NewAddMeme(memes ports.MemeRepository, files ports.FileStore) *AddMeme {
	return &AddMeme{memes: memes, files: files}
}

func (uc *AddMeme) Execute(ctx context.Context, input AddMemeInput) (*domain.Meme, error) {
	if existing, err := uc.memes.GetByName(ctx, input.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domerrors.ErrMemeNameTaken
	}
	locator, fingerprint, err := uc.files.Save(input.FileName, input.File)
	if err != nil {
		return nil, err
	}
	if existing, err := uc.memes.GetByFingerprint(ctx, fingerprint); err != nil {
		_ = uc.files.Remove(locator)
		return nil, err
	} else if existing != nil {
		_ = uc.files.Remove(locator)
		return nil, domerrors.ErrDuplicateContent
	}
	now := time.Now()
	meme := &domain.Meme{
		ID:          domain.NewMemeID(uuid.New()),
		UserID:      input.UserID,
		Fingerprint: fingerprint,
		FileName:    input.FileName,
		FilePath:    locator,
		Name:        input.Name,
		Description: input.Description,
		Tags:        input.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.memes.Create(ctx, meme); err != nil {
		_ = uc.files.Remove(locator)
		if errors.Is(err, domerrors.ErrDuplicateContent) {
			return nil, domerrors.ErrDuplicateContent
		}
		return nil, err
	}
	return meme, nil
}
