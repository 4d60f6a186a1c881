package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Default picture every fresh profile points at until the user uploads one.
const (
	DefaultPictureName = "default-profile-picture.jpg"
	DefaultPicturePath = "uploads/default-profile-picture.jpg"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	User    *domain.User
	Profile *domain.Profile
}

// Register creates an account and chains into profile creation, so a user
// always has a profile row from the moment registration succeeds.
type Register struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	hasher   ports.PasswordHasher
}

func NewRegister(users ports.UserRepository, profiles ports.ProfileRepository, hasher ports.PasswordHasher) *Register {
	return &Register{users: users, profiles: profiles, hasher: hasher}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domerrors.ErrInvalidEmail
	}
	if existing, err := uc.users.GetByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domerrors.ErrUsernameTaken
	}
	if existing, err := uc.users.GetByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domerrors.ErrEmailTaken
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	profile := &domain.Profile{
		ID:          uuid.New(),
		UserID:      user.ID,
		DisplayName: input.Username,
		PictureName: DefaultPictureName,
		PicturePath: DefaultPicturePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return &RegisterResult{User: user, Profile: profile}, nil
}
