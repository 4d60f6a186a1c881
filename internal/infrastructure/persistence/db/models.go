package db

import (
	"time"

	"github.com/google/uuid"
)

// Row structs mirror the table shapes; the postgres package converts them to
// domain entities.

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	Bio         string
	PictureName string
	PicturePath string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Meme struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Fingerprint string
	FileName    string
	FilePath    string
	Name        string
	Description string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Comment struct {
	ID        uuid.UUID
	MemeID    uuid.UUID
	UserID    uuid.UUID
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Reply struct {
	ID        uuid.UUID
	CommentID uuid.UUID
	UserID    uuid.UUID
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
