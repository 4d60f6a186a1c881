package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/application/social"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http/middleware"
)

type ProfileHandler struct {
	profiles *social.Profiles
	follow   *social.Follow
	files    ports.FileStore
	maxBytes int64
	log      zerolog.Logger
}

func NewProfileHandler(profiles *social.Profiles, follow *social.Follow, files ports.FileStore, maxBytes int64, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, follow: follow, files: files, maxBytes: maxBytes, log: log}
}

// Get serves the public user view; no credential required.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid user id")
		return
	}
	view, err := h.profiles.GetPublic(r.Context(), id)
	if err != nil {
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("fetch profile failed")
		}
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Update upserts the caller's profile. The body is multipart so a picture
// can ride along with the text fields; the picture part is optional.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusForbidden, "", "missing credentials")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid multipart body")
		return
	}
	displayName := SanitizeText(r.FormValue("display_name"))
	if displayName == "" {
		writeErr(w, http.StatusBadRequest, "", "enter a display name")
		return
	}
	input := social.UpdateProfileInput{
		UserID:      caller,
		DisplayName: displayName,
		Bio:         SanitizeText(r.FormValue("bio")),
	}
	file, header, err := r.FormFile("picture")
	if err == nil {
		defer file.Close()
		if !allowedUploadType(header.Header.Get("Content-Type")) {
			writeErr(w, http.StatusBadRequest, "", "only image and video files are allowed")
			return
		}
		locator, _, err := h.files.Save(header.Filename, file)
		if err != nil {
			h.log.Error().Err(err).Msg("store profile picture failed")
			writeErr(w, http.StatusInternalServerError, "", "internal error")
			return
		}
		input.PictureName = header.Filename
		input.PicturePath = locator
	}
	profile, err := h.profiles.Update(r.Context(), input)
	if err != nil {
		h.log.Error().Err(err).Msg("update profile failed")
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"display_name": profile.DisplayName,
		"bio":          profile.Bio,
		"picture_path": profile.PicturePath,
		"updated_at":   profile.UpdatedAt,
	})
}

// Follow adds a follow edge from the caller to the user in the path.
func (h *ProfileHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.edge(w, r, true)
}

// Unfollow removes the edge. Same auth policy as Follow: both mutate the
// social graph, so both require a bearer credential.
func (h *ProfileHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.edge(w, r, false)
}

func (h *ProfileHandler) edge(w http.ResponseWriter, r *http.Request, add bool) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusForbidden, "", "missing credentials")
		return
	}
	target, err := domain.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid user id")
		return
	}
	var result *social.FollowResult
	verb := "followed"
	if add {
		result, err = h.follow.Execute(r.Context(), caller, target)
	} else {
		verb = "unfollowed"
		result, err = h.follow.Unfollow(r.Context(), caller, target)
	}
	if err != nil {
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("follow edge update failed")
		}
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("you %s: %s", verb, result.Username),
	})
}
