package social

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

// --- fakes ---

type memUsers struct {
	users []*domain.User
}

func (m *memUsers) Create(_ context.Context, user *domain.User) error {
	m.users = append(m.users, user)
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memProfiles struct {
	byUser map[domain.UserID]*domain.Profile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{byUser: make(map[domain.UserID]*domain.Profile)}
}

func (m *memProfiles) Upsert(_ context.Context, profile *domain.Profile) error {
	m.byUser[profile.UserID] = profile
	return nil
}

func (m *memProfiles) GetByUserID(_ context.Context, userID domain.UserID) (*domain.Profile, error) {
	return m.byUser[userID], nil
}

type edge struct {
	follower, followee domain.UserID
}

type memEdges struct {
	set map[edge]bool
}

func newMemEdges() *memEdges {
	return &memEdges{set: make(map[edge]bool)}
}

func (m *memEdges) Add(_ context.Context, follower, followee domain.UserID) error {
	m.set[edge{follower, followee}] = true
	return nil
}

func (m *memEdges) Remove(_ context.Context, follower, followee domain.UserID) error {
	delete(m.set, edge{follower, followee})
	return nil
}

func (m *memEdges) Followers(_ context.Context, userID domain.UserID) ([]domain.UserID, error) {
	var out []domain.UserID
	for e := range m.set {
		if e.followee == userID {
			out = append(out, e.follower)
		}
	}
	return out, nil
}

func (m *memEdges) Following(_ context.Context, userID domain.UserID) ([]domain.UserID, error) {
	var out []domain.UserID
	for e := range m.set {
		if e.follower == userID {
			out = append(out, e.followee)
		}
	}
	return out, nil
}

type memMemeIDs struct {
	byUser map[domain.UserID][]domain.MemeID
}

func (m *memMemeIDs) Create(context.Context, *domain.Meme) error { return nil }
func (m *memMemeIDs) GetByID(context.Context, domain.MemeID) (*domain.Meme, error) {
	return nil, nil
}
func (m *memMemeIDs) GetByFingerprint(context.Context, string) (*domain.Meme, error) {
	return nil, nil
}
func (m *memMemeIDs) GetByName(context.Context, string) (*domain.Meme, error) { return nil, nil }
func (m *memMemeIDs) List(context.Context) ([]*domain.Meme, error)            { return nil, nil }
func (m *memMemeIDs) Delete(context.Context, domain.MemeID) error             { return nil }
func (m *memMemeIDs) ListIDsByUser(_ context.Context, userID domain.UserID) ([]domain.MemeID, error) {
	return m.byUser[userID], nil
}

func newUser(users *memUsers, username string) *domain.User {
	u := &domain.User{ID: domain.NewUserID(uuid.New()), Username: username, Email: username + "@example.com"}
	users.users = append(users.users, u)
	return u
}

// --- tests ---

func TestFollow(t *testing.T) {
	users := &memUsers{}
	alice := newUser(users, "alice")
	bob := newUser(users, "bob")

	t.Run("self follow rejected", func(t *testing.T) {
		uc := NewFollow(users, newMemEdges())
		_, err := uc.Execute(context.Background(), alice.ID, alice.ID)
		require.ErrorIs(t, err, domerrors.ErrSelfFollow)
	})

	t.Run("unknown target", func(t *testing.T) {
		uc := NewFollow(users, newMemEdges())
		_, err := uc.Execute(context.Background(), alice.ID, domain.NewUserID(uuid.New()))
		require.ErrorIs(t, err, domerrors.ErrUserNotFound)
	})

	t.Run("round trip stays symmetric", func(t *testing.T) {
		edges := newMemEdges()
		uc := NewFollow(users, edges)

		res, err := uc.Execute(context.Background(), alice.ID, bob.ID)
		require.NoError(t, err)
		require.Equal(t, "bob", res.Username)

		followers, err := edges.Followers(context.Background(), bob.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.UserID{alice.ID}, followers)
		following, err := edges.Following(context.Background(), alice.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.UserID{bob.ID}, following)

		// repeated follow is a no-op
		_, err = uc.Execute(context.Background(), alice.ID, bob.ID)
		require.NoError(t, err)
		require.Len(t, edges.set, 1)

		res, err = uc.Unfollow(context.Background(), alice.ID, bob.ID)
		require.NoError(t, err)
		require.Equal(t, "bob", res.Username)
		require.Empty(t, edges.set)

		// unfollowing again is also a no-op
		_, err = uc.Unfollow(context.Background(), alice.ID, bob.ID)
		require.NoError(t, err)
	})
}

func TestProfilesGetPublic(t *testing.T) {
	users := &memUsers{}
	alice := newUser(users, "alice")
	bob := newUser(users, "bob")

	profiles := newMemProfiles()
	require.NoError(t, profiles.Upsert(context.Background(), &domain.Profile{
		ID:          uuid.New(),
		UserID:      alice.ID,
		DisplayName: "Alice",
		Bio:         "hi",
		PicturePath: "uploads/alice.png",
	}))

	edges := newMemEdges()
	require.NoError(t, edges.Add(context.Background(), bob.ID, alice.ID))

	memeID := domain.NewMemeID(uuid.New())
	memeRepo := &memMemeIDs{byUser: map[domain.UserID][]domain.MemeID{alice.ID: {memeID}}}

	uc := NewProfiles(users, profiles, edges, memeRepo)

	t.Run("assembles the public view", func(t *testing.T) {
		view, err := uc.GetPublic(context.Background(), alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", view.Username)
		require.Equal(t, "Alice", view.DisplayName)
		require.Equal(t, "hi", view.Bio)
		require.Equal(t, []domain.UserID{bob.ID}, view.Followers)
		require.Empty(t, view.Following)
		require.Equal(t, []domain.MemeID{memeID}, view.Memes)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.GetPublic(context.Background(), domain.NewUserID(uuid.New()))
		require.ErrorIs(t, err, domerrors.ErrUserNotFound)
	})
}

func TestProfilesUpdate(t *testing.T) {
	users := &memUsers{}
	alice := newUser(users, "alice")
	profiles := newMemProfiles()
	uc := NewProfiles(users, profiles, newMemEdges(), &memMemeIDs{})

	updated, err := uc.Update(context.Background(), UpdateProfileInput{
		UserID:      alice.ID,
		DisplayName: "Alice",
		Bio:         "hello",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice", updated.DisplayName)

	// a later update without a picture keeps the existing one
	updated.PictureName = "alice.png"
	updated.PicturePath = "uploads/alice.png"
	require.NoError(t, profiles.Upsert(context.Background(), updated))

	again, err := uc.Update(context.Background(), UpdateProfileInput{
		UserID:      alice.ID,
		DisplayName: "Alice2",
		Bio:         "bye",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice2", again.DisplayName)
	require.Equal(t, "uploads/alice.png", again.PicturePath)
}
