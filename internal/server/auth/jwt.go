// Package auth implements the token codec: minting, verifying, and decoding
// the signed JWTs used as access and refresh credentials. Access and refresh
// tokens are signed with distinct keys so a compromise of one class cannot
// forge the other.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/medportal/authsvc/internal/common"
	"github.com/medportal/authsvc/internal/server/models"
)

// Claims is the identity payload embedded in both token classes.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"uid"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}

// Mint produces a signed HS256 token carrying the identity claims, with
// issued-at set to now and expiry to now+ttl. Each token gets a unique jti
// so two mints for the same identity in the same second still differ; token
// rotation relies on the new token never equaling the old one.
func Mint(userID string, email string, role models.Role, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify checks the signature and expiry of tokenString against key.
// It returns common.ErrTokenExpired for a well-formed but expired token and
// common.ErrTokenInvalid for anything malformed or signed with a different
// key, so callers can prompt a refresh for the former and hard-reject the
// latter.
func Verify(tokenString string, key []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}

// Decode parses the claims of tokenString WITHOUT verifying the signature.
// It exists for introspection and logging only and must never be used to
// authorize access; trust boundaries go through Verify.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
