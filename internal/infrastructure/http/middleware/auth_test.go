package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
)

type stubIssuer struct {
	userID string
	err    error
}

func (s *stubIssuer) IssueAccessToken(string) (string, error)  { return "", nil }
func (s *stubIssuer) IssueRefreshToken(string) (string, error) { return "", nil }
func (s *stubIssuer) ValidateAccessToken(string) (string, error) {
	return s.userID, s.err
}
func (s *stubIssuer) ValidateRefreshToken(string) (string, error) {
	return s.userID, s.err
}

func TestAuthValidator(t *testing.T) {
	userID := uuid.New()

	protected := func(issuer *stubIssuer) (http.Handler, *domain.UserID) {
		var seen domain.UserID
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := UserFromContext(r.Context())
			require.True(t, ok)
			seen = id
			w.WriteHeader(http.StatusOK)
		})
		return NewAuthValidator(issuer).Handler(next), &seen
	}

	t.Run("valid token reaches the handler with the user in context", func(t *testing.T) {
		handler, seen := protected(&stubIssuer{userID: userID.String()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, domain.NewUserID(userID), *seen)
	})

	t.Run("missing header", func(t *testing.T) {
		handler, _ := protected(&stubIssuer{userID: userID.String()})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"error":"missing or invalid authorization","code":"forbidden"}`, rec.Body.String())
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		handler, _ := protected(&stubIssuer{userID: userID.String()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		handler, _ := protected(&stubIssuer{err: errors.New("expired")})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("token with malformed user id", func(t *testing.T) {
		handler, _ := protected(&stubIssuer{userID: "not-a-uuid"})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
