// Package ident verifies the bearer identity attached to API requests
// Tokens are HS256 JWTs whose sub claim carries the user id
// Issuing tokens is out of scope here, any upstream login service that shares the secret can mint them
package ident

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	perr "mealboard/internal/platform/errors"
)

// Config for the verifier
type Config struct {
	// Secret is the shared HS256 signing key
	Secret string
	// Issuer is matched against the iss claim when non empty
	Issuer string
	// Leeway tolerates small clock skew on exp and nbf
	Leeway time.Duration
}

// Verifier checks tokens and extracts the subject
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewVerifier constructs a Verifier
// an empty secret is a configuration error, not an auth failure
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.Secret == "" {
		return nil, perr.Internalf("ident: empty signing secret")
	}
	leeway := cfg.Leeway
	if leeway == 0 {
		leeway = 30 * time.Second
	}
	return &Verifier{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		leeway: leeway,
	}, nil
}

// Parse validates a raw token and returns the user id from the sub claim
func (v *Verifier) Parse(raw string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, v.keyfunc, opts...)
	if err != nil {
		return "", perr.Unauthorizedf("token rejected: %v", err)
	}
	if !tok.Valid {
		return "", perr.Unauthorizedf("token invalid")
	}
	if claims.Subject == "" {
		return "", perr.Unauthorizedf("token missing subject")
	}
	return claims.Subject, nil
}

func (v *Verifier) keyfunc(t *jwt.Token) (any, error) {
	return v.secret, nil
}

// Mint signs a token for uid, used by tooling and tests
func (v *Verifier) Mint(uid string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString(v.secret)
	if err != nil {
		return "", perr.Internalf("ident: sign: %v", err)
	}
	return s, nil
}
