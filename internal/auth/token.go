package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "agriinsight-api"

// Claims is the session token payload: who, issued when, valid until.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenSigner issues and verifies stateless HS256 session tokens. There is
// no server-side session table: verification is signature + expiry only, so
// an issued token cannot be revoked before it expires.
type TokenSigner struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	return &TokenSigner{
		secret:  []byte(secret),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Issue signs a token for the given user, valid for the configured TTL.
func (t *TokenSigner) Issue(userID int) (string, error) {
	if userID <= 0 {
		return "", errors.New("invalid user ID")
	}

	now := t.nowFunc()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses the token, checks signature, expiry and issuer, and returns
// the authenticated user id. Any failure maps to ErrInvalidToken.
func (t *TokenSigner) Verify(tokenString string) (int, error) {
	if tokenString == "" {
		return 0, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.nowFunc))

	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	if claims.UserID <= 0 || claims.Issuer != tokenIssuer {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
