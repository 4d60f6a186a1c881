package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestIssuer(accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return NewTokenIssuer([]byte("access-secret"), []byte("refresh-secret"), "test", accessTTL, refreshTTL)
}

func TestIssueAndValidate(t *testing.T) {
	issuer := newTestIssuer(time.Minute, time.Hour)

	access, err := issuer.IssueAccessToken("user-1")
	require.NoError(t, err)
	refresh, err := issuer.IssueRefreshToken("user-1")
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	uid, err := issuer.ValidateAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, "user-1", uid)

	uid, err = issuer.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, "user-1", uid)
}

func TestEveryTokenIsUnique(t *testing.T) {
	// back-to-back mints land in the same second; the strings must still
	// differ, or refresh rotation would re-issue the token it just retired
	issuer := newTestIssuer(time.Minute, time.Hour)

	first, err := issuer.IssueRefreshToken("user-1")
	require.NoError(t, err)
	second, err := issuer.IssueRefreshToken("user-1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	a1, err := issuer.IssueAccessToken("user-1")
	require.NoError(t, err)
	a2, err := issuer.IssueAccessToken("user-1")
	require.NoError(t, err)
	require.NotEqual(t, a1, a2)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	issuer := newTestIssuer(time.Minute, time.Hour)

	access, err := issuer.IssueAccessToken("user-1")
	require.NoError(t, err)
	refresh, err := issuer.IssueRefreshToken("user-1")
	require.NoError(t, err)

	// an access token must not pass as a refresh token, nor the reverse
	_, err = issuer.ValidateRefreshToken(access)
	require.Error(t, err)
	_, err = issuer.ValidateAccessToken(refresh)
	require.Error(t, err)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	issuer := newTestIssuer(time.Minute, time.Hour)
	other := NewTokenIssuer([]byte("other-a"), []byte("other-r"), "test", time.Minute, time.Hour)

	token, err := other.IssueAccessToken("user-1")
	require.NoError(t, err)
	_, err = issuer.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	issuer := newTestIssuer(-time.Minute, -time.Minute)

	token, err := issuer.IssueAccessToken("user-1")
	require.NoError(t, err)
	_, err = issuer.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer := newTestIssuer(time.Minute, time.Hour)
	for _, token := range []string{"", "not.a.jwt", "a.b"} {
		_, err := issuer.ValidateAccessToken(token)
		require.Error(t, err, "token=%q", token)
	}
}
