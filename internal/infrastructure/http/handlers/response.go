package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	domerrors "github.com/The0nly0ne1/MemeVotingApp/internal/domain/errors"
)

// writeErr sends JSON { "error": message, "code": errCode }. If errCode is
// empty, a default is derived from the status code.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeInvalidCredentials
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	default:
		return ErrCodeInternal
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps domain sentinel errors onto the HTTP taxonomy. Anything
// unrecognized is an internal error and its detail stays out of the response.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domerrors.ErrInvalidEmail),
		errors.Is(err, domerrors.ErrSelfFollow):
		return http.StatusBadRequest, ErrCodeInvalidRequest
	case errors.Is(err, domerrors.ErrWrongPassword):
		return http.StatusUnauthorized, ErrCodeInvalidCredentials
	case errors.Is(err, domerrors.ErrInvalidToken),
		errors.Is(err, domerrors.ErrNotOwner):
		return http.StatusForbidden, ErrCodeForbidden
	case errors.Is(err, domerrors.ErrAccountNotFound),
		errors.Is(err, domerrors.ErrUserNotFound),
		errors.Is(err, domerrors.ErrMemeNotFound),
		errors.Is(err, domerrors.ErrCommentNotFound),
		errors.Is(err, domerrors.ErrReplyNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, domerrors.ErrUsernameTaken),
		errors.Is(err, domerrors.ErrEmailTaken),
		errors.Is(err, domerrors.ErrMemeNameTaken),
		errors.Is(err, domerrors.ErrDuplicateContent):
		return http.StatusConflict, ErrCodeConflict
	}
	return http.StatusInternalServerError, ErrCodeInternal
}

// writeDomainErr maps err via statusFor; internal errors get a generic body.
func writeDomainErr(w http.ResponseWriter, err error) {
	code, errCode := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	writeErr(w, code, errCode, message)
}
