package social

import (
	"context"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

type FollowResult struct {
	// Username of the user that was followed or unfollowed.
	Username string
}

// Follow adds and removes follow edges. The edge lives in a single relation,
// so A-follows-B and B-has-follower-A can never drift apart; concurrent
// follow/unfollow calls settle into a valid set either way.
type Follow struct {
	users ports.UserRepository
	edges ports.FollowRepository
}

func NewFollow(users ports.UserRepository, edges ports.FollowRepository) *Follow {
	return &Follow{users: users, edges: edges}
}

func (uc *Follow) Execute(ctx context.Context, follower, followee domain.UserID) (*FollowResult, error) {
	target, err := uc.target(ctx, follower, followee)
	if err != nil {
		return nil, err
	}
	if err := uc.edges.Add(ctx, follower, followee); err != nil {
		return nil, err
	}
	return &FollowResult{Username: target.Username}, nil
}

func (uc *Follow) Unfollow(ctx context.Context, follower, followee domain.UserID) (*FollowResult, error) {
	target, err := uc.target(ctx, follower, followee)
	if err != nil {
		return nil, err
	}
	if err := uc.edges.Remove(ctx, follower, followee); err != nil {
		return nil, err
	}
	return &FollowResult{Username: target.Username}, nil
}

func (uc *Follow) target(ctx context.Context, follower, followee domain.UserID) (*domain.User, error) {
	if follower == followee {
		return nil, domerrors.ErrSelfFollow
	}
	target, err := uc.users.GetByID(ctx, followee)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domerrors.ErrUserNotFound
	}
	return target, nil
}
