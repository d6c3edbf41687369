// Package nonce issues and verifies anti-forgery tokens for form submissions.
//
// A token is an HS256 JWT bound to a user and an action scope such as
// "save_rating:42". It is valid for Lifetime after issue.
package nonce

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Lifetime is how long an issued token stays valid.
const Lifetime = 24 * time.Hour

const issuer = "content-ratings"

type claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("nonce secret must not be empty")
	}
	return &Issuer{secret: []byte(secret), now: time.Now}, nil
}

// WithClock returns a copy of the issuer that reads time from now.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	return &Issuer{secret: i.secret, now: now}
}

func (i *Issuer) Issue(userID int64, scope string) (string, error) {
	issuedAt := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(Lifetime)),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing nonce: %w", err)
	}
	return signed, nil
}

// Verify reports whether token was issued by this issuer for the user and
// scope and has not expired.
func (i *Issuer) Verify(token string, userID int64, scope string) bool {
	if token == "" {
		return false
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(strconv.FormatInt(userID, 10)),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return false
	}

	return c.Scope == scope
}
