package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

// TokenCodec signs and verifies session tokens. Verification is a pure
// function of the token string and the secret; nothing is stored server-side.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue creates a signed token carrying the authenticated flag and an
// expiry 24 hours out.
func (c *TokenCodec) Issue() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"authenticated": true,
		"iat":           jwt.NewNumericDate(now),
		"exp":           jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify reports whether token is well formed, signed with our secret,
// unexpired, and carries authenticated=true. Malformed input of any kind
// returns false, never an error.
func (c *TokenCodec) Verify(token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	flag, _ := claims["authenticated"].(bool)
	return flag
}
