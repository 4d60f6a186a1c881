package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer implements ports.TokenIssuer with HS256 and two independent
// secrets: one signs the short-lived access token, the other the long-lived
// refresh token, so a leaked access secret cannot forge refresh credentials.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenIssuer(accessSecret, refreshSecret []byte, issuer string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (t *TokenIssuer) IssueAccessToken(userID string) (string, error) {
	return t.sign(userID, t.accessTTL, t.accessSecret)
}

func (t *TokenIssuer) IssueRefreshToken(userID string) (string, error) {
	return t.sign(userID, t.refreshTTL, t.refreshSecret)
}

func (t *TokenIssuer) sign(userID string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// iat/exp only have second resolution; the jti keeps two tokens
			// minted in the same second (login bursts, immediate refresh)
			// from serializing to the same string.
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func (t *TokenIssuer) ValidateAccessToken(tokenString string) (string, error) {
	return t.parse(tokenString, t.accessSecret)
}

func (t *TokenIssuer) ValidateRefreshToken(tokenString string) (string, error) {
	return t.parse(tokenString, t.refreshSecret)
}

func (t *TokenIssuer) parse(tokenString string, secret []byte) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	if c.UserID == "" {
		return "", errors.New("token carries no user id")
	}
	return c.UserID, nil
}
