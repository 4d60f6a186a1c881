package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/ports"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
)

// AuthValidator checks the bearer access token and puts the caller's user id
// into the request context. Every protected route goes through this single
// enforcement point; a missing, malformed, or expired credential is rejected
// with 403 before any business logic runs.
type AuthValidator struct {
	issuer ports.TokenIssuer
}

func NewAuthValidator(issuer ports.TokenIssuer) *AuthValidator {
	return &AuthValidator{issuer: issuer}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeForbidden(w, "missing or invalid authorization")
			return
		}
		userID, err := m.issuer.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeForbidden(w, "invalid token")
			return
		}
		id, err := domain.ParseUserID(userID)
		if err != nil {
			writeForbidden(w, "invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), id)))
	})
}

func writeForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": "forbidden"})
}
