package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailTaken       = errors.New("email already taken")
	ErrAccountNotFound  = errors.New("account doesn't exist, register first")
	ErrWrongPassword    = errors.New("wrong password")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrUserNotFound     = errors.New("user not found")
	ErrMemeNotFound     = errors.New("meme not found")
	ErrMemeNameTaken    = errors.New("name already exists")
	ErrDuplicateContent = errors.New("meme already exists (duplicate content)")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrReplyNotFound    = errors.New("reply not found")
	ErrSelfFollow       = errors.New("you cannot follow yourself")
	ErrNotOwner         = errors.New("you do not own this resource")
)
