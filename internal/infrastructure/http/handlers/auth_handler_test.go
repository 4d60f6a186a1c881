package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/auth"
	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
	infraauth "github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/auth"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/security"
)

// in-memory repositories so the handler tests exercise the real use cases
// and real crypto without a database

type memUsers struct {
	users []*domain.User
}

func (m *memUsers) Create(_ context.Context, user *domain.User) error {
	m.users = append(m.users, user)
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memProfiles struct {
	byUser map[domain.UserID]*domain.Profile
}

func (m *memProfiles) Upsert(_ context.Context, profile *domain.Profile) error {
	m.byUser[profile.UserID] = profile
	return nil
}

func (m *memProfiles) GetByUserID(_ context.Context, userID domain.UserID) (*domain.Profile, error) {
	return m.byUser[userID], nil
}

type memSessions struct {
	byHash map[string]*domain.Session
}

func (m *memSessions) Store(_ context.Context, userID domain.UserID, tokenHash string, expiresAt time.Time) error {
	m.byHash[tokenHash] = &domain.Session{ID: uuid.New(), UserID: userID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	return nil
}

func (m *memSessions) Get(_ context.Context, tokenHash string) (*domain.Session, error) {
	return m.byHash[tokenHash], nil
}

func (m *memSessions) Rotate(_ context.Context, oldHash, newHash string, expiresAt time.Time) error {
	session, ok := m.byHash[oldHash]
	if !ok {
		return nil
	}
	delete(m.byHash, oldHash)
	session.TokenHash = newHash
	session.ExpiresAt = expiresAt
	m.byHash[newHash] = session
	return nil
}

func (m *memSessions) Delete(_ context.Context, tokenHash string) error {
	delete(m.byHash, tokenHash)
	return nil
}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	users := &memUsers{}
	profiles := &memProfiles{byUser: make(map[domain.UserID]*domain.Profile)}
	sessions := &memSessions{byHash: make(map[string]*domain.Session)}
	hasher := security.NewHasher(8*1024, 1, 1)
	issuer := infraauth.NewTokenIssuer([]byte("access-secret"), []byte("refresh-secret"), "test", time.Minute, time.Hour)

	return NewAuthHandler(
		auth.NewRegister(users, profiles, hasher),
		auth.NewLogin(users, hasher, issuer, sessions, time.Minute, time.Hour),
		auth.NewRefresh(issuer, sessions, time.Minute, time.Hour),
		auth.NewLogout(sessions),
		time.Hour,
		zerolog.Nop(),
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func registerAlice(t *testing.T, h *AuthHandler) {
	t.Helper()
	rec := postJSON(t, h.Register, "/register", `{"username":"alice","email":"alice@example.com","password":"password1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == RefreshCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", RefreshCookieName)
	return nil
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newAuthHandler(t)
		rec := postJSON(t, h.Register, "/register", `{"username":"alice","email":"alice@example.com","password":"password1"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "alice", body["username"])
		require.Equal(t, "alice@example.com", body["email"])
		require.NotEmpty(t, body["id"])
	})

	t.Run("blank fields", func(t *testing.T) {
		h := newAuthHandler(t)
		rec := postJSON(t, h.Register, "/register", `{"username":"","email":"","password":""}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		h := newAuthHandler(t)
		registerAlice(t, h)
		rec := postJSON(t, h.Register, "/register", `{"username":"alice","email":"other@example.com","password":"password1"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.JSONEq(t, `{"error":"username already exists","code":"conflict"}`, rec.Body.String())
	})

	t.Run("malformed email", func(t *testing.T) {
		h := newAuthHandler(t)
		rec := postJSON(t, h.Register, "/register", `{"username":"alice","email":"not-an-email","password":"password1"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("unknown account is 404, wrong password is 401", func(t *testing.T) {
		h := newAuthHandler(t)
		registerAlice(t, h)

		rec := postJSON(t, h.Login, "/login", `{"username":"nobody","password":"password1"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"account doesn't exist, register first","code":"not_found"}`, rec.Body.String())

		rec = postJSON(t, h.Login, "/login", `{"username":"alice","password":"wrongwrong"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success returns access token and sets the refresh cookie", func(t *testing.T) {
		h := newAuthHandler(t)
		registerAlice(t, h)

		rec := postJSON(t, h.Login, "/login", `{"username":"alice","password":"password1"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			AccessToken string `json:"access_token"`
			ExpiresIn   int64  `json:"expires_in"`
			User        struct {
				Username string `json:"username"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.AccessToken)
		require.Equal(t, int64(60), body.ExpiresIn)
		require.Equal(t, "alice", body.User.Username)

		cookie := refreshCookie(t, rec)
		require.NotEmpty(t, cookie.Value)
		require.True(t, cookie.HttpOnly)
		require.True(t, cookie.Secure)
		require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		require.Equal(t, "/", cookie.Path)
	})
}

func TestRefreshHandler(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		h := newAuthHandler(t)
		rec := postJSON(t, h.Refresh, "/refresh", "")
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rotation kills the previous cookie value", func(t *testing.T) {
		h := newAuthHandler(t)
		registerAlice(t, h)
		login := postJSON(t, h.Login, "/login", `{"username":"alice","password":"password1"}`)
		require.Equal(t, http.StatusOK, login.Code)
		old := refreshCookie(t, login)

		rec := postJSON(t, h.Refresh, "/refresh", "", old)
		require.Equal(t, http.StatusOK, rec.Code)
		rotated := refreshCookie(t, rec)
		require.NotEqual(t, old.Value, rotated.Value)

		// old token was rotated away
		rec = postJSON(t, h.Refresh, "/refresh", "", old)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"error":"invalid refresh token","code":"forbidden"}`, rec.Body.String())

		// the rotated one still works
		rec = postJSON(t, h.Refresh, "/refresh", "", rotated)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forged cookie", func(t *testing.T) {
		h := newAuthHandler(t)
		rec := postJSON(t, h.Refresh, "/refresh", "", &http.Cookie{Name: RefreshCookieName, Value: "forged"})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	h := newAuthHandler(t)
	registerAlice(t, h)
	login := postJSON(t, h.Login, "/login", `{"username":"alice","password":"password1"}`)
	cookie := refreshCookie(t, login)

	rec := postJSON(t, h.Logout, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := refreshCookie(t, rec)
	require.Empty(t, cleared.Value)
	require.Negative(t, cleared.MaxAge)

	// the revoked token can no longer refresh
	rec = postJSON(t, h.Refresh, "/refresh", "", cookie)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// logging out twice is fine
	rec = postJSON(t, h.Logout, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
}
