package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/memes"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http/middleware"
)

// allowedMimeTypes is checked before the dedup gate ever sees the upload.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":       true,
	"image/png":        true,
	"image/gif":        true,
	"image/webp":       true,
	"image/bmp":        true,
	"image/svg+xml":    true,
	"video/mp4":        true,
	"video/quicktime":  true,
	"video/x-msvideo":  true,
	"video/x-matroska": true,
	"video/webm":       true,
	"video/ogg":        true,
}

func allowedUploadType(contentType string) bool {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return allowedMimeTypes[strings.TrimSpace(strings.ToLower(contentType))]
}

type MemeHandler struct {
	add      *memes.AddMeme
	memes    *memes.Memes
	maxBytes int64
	log      zerolog.Logger
}

func NewMemeHandler(add *memes.AddMeme, collection *memes.Memes, maxBytes int64, log zerolog.Logger) *MemeHandler {
	return &MemeHandler{add: add, memes: collection, maxBytes: maxBytes, log: log}
}

type memeResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	FilePath    string   `json:"file_path"`
	Fingerprint string   `json:"fingerprint"`
	CreatedAt   string   `json:"created_at"`
}

func toMemeResponse(m *domain.Meme) memeResponse {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return memeResponse{
		ID:          m.ID.String(),
		UserID:      m.UserID.String(),
		Name:        m.Name,
		Description: m.Description,
		Tags:        tags,
		FilePath:    m.FilePath,
		Fingerprint: m.Fingerprint,
		CreatedAt:   m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *MemeHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.memes.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list memes failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	out := make([]memeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMemeResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *MemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseMemeID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid meme id")
		return
	}
	meme, err := h.memes.Get(r.Context(), id)
	if err != nil {
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("fetch meme failed")
		}
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemeResponse(meme))
}

// Add ingests a multipart upload through the dedup gate. Size and MIME
// checks reject before anything is written; the gate decides the rest.
func (h *MemeHandler) Add(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusForbidden, "", "missing credentials")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		middleware.RecordUploadRejected("size")
		writeErr(w, http.StatusBadRequest, "", "upload too large or malformed")
		return
	}
	name := SanitizeText(r.FormValue("name"))
	if name == "" || len(name) > MaxNameLength {
		writeErr(w, http.StatusBadRequest, "", "enter a name")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "upload a file")
		return
	}
	defer file.Close()
	if !allowedUploadType(header.Header.Get("Content-Type")) {
		middleware.RecordUploadRejected("mime")
		writeErr(w, http.StatusBadRequest, "", "only image and video files are allowed")
		return
	}
	var tags []string
	for _, t := range strings.Split(r.FormValue("tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	meme, err := h.add.Execute(r.Context(), memes.AddMemeInput{
		UserID:      caller,
		Name:        name,
		Description: SanitizeText(r.FormValue("description")),
		Tags:        tags,
		FileName:    header.Filename,
		File:        file,
	})
	if err != nil {
		if errors.Is(err, domerrors.ErrDuplicateContent) {
			middleware.RecordUploadRejected("duplicate")
		}
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("add meme failed")
		}
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMemeResponse(meme))
}

func (h *MemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusForbidden, "", "missing credentials")
		return
	}
	id, err := domain.ParseMemeID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid meme id")
		return
	}
	meme, err := h.memes.Delete(r.Context(), id, caller)
	if err != nil {
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("delete meme failed")
		}
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "meme deleted",
		"meme":    toMemeResponse(meme),
	})
}
