package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/memes"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http/middleware"
)

type CommentHandler struct {
	comments *memes.Comments
	replies  *memes.Replies
	log      zerolog.Logger
}

func NewCommentHandler(comments *memes.Comments, replies *memes.Replies, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, replies: replies, log: log}
}

type commentResponse struct {
	ID        string `json:"id"`
	MemeID    string `json:"meme_id,omitempty"`
	CommentID string `json:"comment_id,omitempty"`
	UserID    string `json:"user_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID.String(),
		MemeID:    c.MemeID.String(),
		UserID:    c.UserID.String(),
		Body:      c.Body,
		CreatedAt: c.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: c.UpdatedAt.UTC().Format(timeLayout),
	}
}

func toReplyResponse(rep *domain.Reply) commentResponse {
	return commentResponse{
		ID:        rep.ID.String(),
		CommentID: rep.CommentID.String(),
		UserID:    rep.UserID.String(),
		Body:      rep.Body,
		CreatedAt: rep.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: rep.UpdatedAt.UTC().Format(timeLayout),
	}
}

func (h *CommentHandler) body(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return "", false
	}
	text := SanitizeText(body[field])
	if text == "" {
		writeErr(w, http.StatusBadRequest, "", "don't leave the field blank")
		return "", false
	}
	return text, true
}

func (h *CommentHandler) caller(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusForbidden, "", "missing credentials")
	}
	return caller, ok
}

func (h *CommentHandler) fail(w http.ResponseWriter, err error, op string) {
	if code, _ := statusFor(err); code == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("op", op).Msg("comment operation failed")
	}
	writeDomainErr(w, err)
}

// AddComment attaches a new top-level comment to the meme in the path.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	memeID, err := domain.ParseMemeID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid meme id")
		return
	}
	text, ok := h.body(w, r, "comment")
	if !ok {
		return
	}
	comment, err := h.comments.Add(r.Context(), memeID, caller, text)
	if err != nil {
		h.fail(w, err, "add_comment")
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	memeID, err := domain.ParseMemeID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid meme id")
		return
	}
	comments, err := h.comments.ListForMeme(r.Context(), memeID)
	if err != nil {
		h.fail(w, err, "list_comments")
		return
	}
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCommentID(chi.URLParam(r, "commentID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid comment id")
		return
	}
	comment, err := h.comments.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err, "get_comment")
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(comment))
}

func (h *CommentHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := domain.ParseCommentID(chi.URLParam(r, "commentID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid comment id")
		return
	}
	text, ok := h.body(w, r, "comment")
	if !ok {
		return
	}
	comment, err := h.comments.Edit(r.Context(), id, caller, text)
	if err != nil {
		h.fail(w, err, "edit_comment")
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(comment))
}

func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := domain.ParseCommentID(chi.URLParam(r, "commentID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid comment id")
		return
	}
	comment, err := h.comments.Delete(r.Context(), id, caller)
	if err != nil {
		h.fail(w, err, "delete_comment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "comment deleted",
		"comment": toCommentResponse(comment),
	})
}

// AddReply attaches a reply to the comment in the path. Replies are the leaf
// level; there is no reply-to-reply route.
func (h *CommentHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	commentID, err := domain.ParseCommentID(chi.URLParam(r, "commentID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid comment id")
		return
	}
	text, ok := h.body(w, r, "reply")
	if !ok {
		return
	}
	reply, err := h.replies.Add(r.Context(), commentID, caller, text)
	if err != nil {
		h.fail(w, err, "add_reply")
		return
	}
	writeJSON(w, http.StatusCreated, toReplyResponse(reply))
}

func (h *CommentHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	commentID, err := domain.ParseCommentID(chi.URLParam(r, "commentID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid comment id")
		return
	}
	replies, err := h.replies.ListForComment(r.Context(), commentID)
	if err != nil {
		h.fail(w, err, "list_replies")
		return
	}
	out := make([]commentResponse, 0, len(replies))
	for _, rep := range replies {
		out = append(out, toReplyResponse(rep))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CommentHandler) GetReply(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseReplyID(chi.URLParam(r, "replyID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid reply id")
		return
	}
	reply, err := h.replies.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err, "get_reply")
		return
	}
	writeJSON(w, http.StatusOK, toReplyResponse(reply))
}

func (h *CommentHandler) EditReply(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := domain.ParseReplyID(chi.URLParam(r, "replyID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid reply id")
		return
	}
	text, ok := h.body(w, r, "reply")
	if !ok {
		return
	}
	reply, err := h.replies.Edit(r.Context(), id, caller, text)
	if err != nil {
		h.fail(w, err, "edit_reply")
		return
	}
	writeJSON(w, http.StatusOK, toReplyResponse(reply))
}

func (h *CommentHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := domain.ParseReplyID(chi.URLParam(r, "replyID"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid reply id")
		return
	}
	reply, err := h.replies.Delete(r.Context(), id, caller)
	if err != nil {
		h.fail(w, err, "delete_reply")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "reply deleted",
		"reply":   toReplyResponse(reply),
	})
}
