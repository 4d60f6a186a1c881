package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a UserID from a uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// ParseUserID parses the canonical string form.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID{UUID: id}, nil
}

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// User is a registered account. The password is stored only as an Argon2id hash.
type User struct {
	ID           UserID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the public-facing fields of a user. One profile per user,
// created with defaults at registration and updated in place afterwards.
type Profile struct {
	ID          uuid.UUID
	UserID      UserID
	DisplayName string
	Bio         string
	PictureName string
	PicturePath string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PublicUser is the projection of a user that unauthenticated callers may see.
type PublicUser struct {
	ID          UserID   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Bio         string   `json:"bio"`
	PicturePath string   `json:"picture_path"`
	Followers   []UserID `json:"followers"`
	Following   []UserID `json:"following"`
	Memes       []MemeID `json:"memes"`
}
