package social

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

// Profiles serves the public user view and profile edits.
type Profiles struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	edges    ports.FollowRepository
	memes    ports.MemeRepository
}

func NewProfiles(users ports.UserRepository, profiles ports.ProfileRepository, edges ports.FollowRepository, memes ports.MemeRepository) *Profiles {
	return &Profiles{users: users, profiles: profiles, edges: edges, memes: memes}
}

// GetPublic assembles the unauthenticated projection of a user: profile
// fields plus follower/following sets and owned meme ids. Password hash and
// email never leave this layer.
func (uc *Profiles) GetPublic(ctx context.Context, id domain.UserID) (*domain.PublicUser, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	view := &domain.PublicUser{
		ID:       user.ID,
		Username: user.Username,
	}
	profile, err := uc.profiles.GetByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		view.DisplayName = profile.DisplayName
		view.Bio = profile.Bio
		view.PicturePath = profile.PicturePath
	}
	if view.Followers, err = uc.edges.Followers(ctx, id); err != nil {
		return nil, err
	}
	if view.Following, err = uc.edges.Following(ctx, id); err != nil {
		return nil, err
	}
	if view.Memes, err = uc.memes.ListIDsByUser(ctx, id); err != nil {
		return nil, err
	}
	return view, nil
}

type UpdateProfileInput struct {
	UserID      domain.UserID
	DisplayName string
	Bio         string
	// PictureName/PicturePath are optional; empty values keep the current picture.
	PictureName string
	PicturePath string
}

// Update upserts the caller's profile fields in place.
func (uc *Profiles) Update(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	now := time.Now()
	profile, err := uc.profiles.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &domain.Profile{
			ID:        uuid.New(),
			UserID:    input.UserID,
			CreatedAt: now,
		}
	}
	profile.DisplayName = input.DisplayName
	profile.Bio = input.Bio
	if input.PicturePath != "" {
		profile.PictureName = input.PictureName
		profile.PicturePath = input.PicturePath
	}
	profile.UpdatedAt = now
	if err := uc.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
