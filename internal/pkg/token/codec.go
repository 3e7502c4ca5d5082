// Package token encodes and decodes the HS256 bearer tokens issued at login.
//
// Claims are a snapshot taken at issuance: role and admin travel inside the
// token and are not re-checked against the directory until expiry. A demoted
// admin therefore keeps effective rights for the remaining token lifetime.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired is returned when the embedded expiry has elapsed.
	ErrExpired = errors.New("token expired")
	// ErrSignatureInvalid is returned when the signature does not verify,
	// either because the token was tampered with or signed under a
	// different secret.
	ErrSignatureInvalid = errors.New("token signature invalid")
	// ErrMalformed is returned when the token cannot be parsed at all.
	ErrMalformed = errors.New("token malformed")
)

// Claims is the identity snapshot embedded in a token. The subject carries
// the user name; expiry lives in the registered claims.
type Claims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	Admin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Codec signs and verifies claims under a process-wide secret, loaded once
// at startup and read-only afterwards.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes claims with an absolute UTC expiry ttl from now and
// signs them with HMAC-SHA256.
func (c *Codec) Encode(name string, userID int64, role string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Role:   role,
		Admin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the signature before interpreting any claim content, then
// validates the embedded expiry. Failures map to the package sentinels.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrMalformed
		}
	}
	if !parsed.Valid {
		return nil, ErrSignatureInvalid
	}

	return claims, nil
}
