package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommentID is a value object for comment identity.
type CommentID struct{ uuid.UUID }

// NewCommentID creates a CommentID from a uuid.
func NewCommentID(id uuid.UUID) CommentID { return CommentID{UUID: id} }

// ParseCommentID parses the canonical string form.
func ParseCommentID(s string) (CommentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CommentID{}, err
	}
	return CommentID{UUID: id}, nil
}

// String returns the canonical string form.
func (c CommentID) String() string { return c.UUID.String() }

// ReplyID is a value object for reply identity.
type ReplyID struct{ uuid.UUID }

// NewReplyID creates a ReplyID from a uuid.
func NewReplyID(id uuid.UUID) ReplyID { return ReplyID{UUID: id} }

// ParseReplyID parses the canonical string form.
func ParseReplyID(s string) (ReplyID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ReplyID{}, err
	}
	return ReplyID{UUID: id}, nil
}

// String returns the canonical string form.
func (r ReplyID) String() string { return r.UUID.String() }

// Comment is a top-level comment on a meme. Replies hang off comments and
// the tree stops there: meme -> comments -> replies, never deeper.
type Comment struct {
	ID        CommentID
	MemeID    MemeID
	UserID    UserID
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reply is a second-level comment attached to a Comment.
type Reply struct {
	ID        ReplyID
	CommentID CommentID
	UserID    UserID
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
