package domain

import (
	"time"

	"github.com/google/uuid"
)

// MemeID is a value object for meme identity.
type MemeID struct{ uuid.UUID }

// NewMemeID creates a MemeID from a uuid.
func NewMemeID(id uuid.UUID) MemeID { return MemeID{UUID: id} }

// ParseMemeID parses the canonical string form.
func ParseMemeID(s string) (MemeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MemeID{}, err
	}
	return MemeID{UUID: id}, nil
}

// String returns the canonical string form.
func (m MemeID) String() string { return m.UUID.String() }

// Meme is an uploaded artifact plus its metadata. Fingerprint is the
// hex-encoded SHA-256 of the file content and is globally unique: two memes
// never share a fingerprint, which is what makes upload deduplication stick.
type Meme struct {
	ID          MemeID
	UserID      UserID
	Fingerprint string
	FileName    string
	FilePath    string
	Name        string
	Description string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
