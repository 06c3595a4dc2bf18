// Package auth issues and validates the RS256 access tokens used by both
// portals, and hashes account passwords with bcrypt.
package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims carried by an access token.
type Claims struct {
	jwt.RegisteredClaims

	Email string       `json:"email"`
	Scope domain.Scope `json:"scope"`
}

// Issuer signs access tokens with an RSA private key.
type Issuer struct {
	key *rsa.PrivateKey
	ttl time.Duration
	now func() time.Time
}

// NewIssuer parses the PEM encoded private key.
func NewIssuer(privateKeyPEM string, ttl time.Duration) (*Issuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Issuer{key: key, ttl: ttl, now: time.Now}, nil
}

// TTL is the lifetime of issued tokens.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for p valid for the issuer TTL.
func (i *Issuer) Issue(p domain.Principal) (string, error) {
	return i.IssueWithTTL(p, i.ttl)
}

// IssueWithTTL signs a token for p valid for ttl.
func (i *Issuer) IssueWithTTL(p domain.Principal, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Email: p.Email,
		Scope: p.Scope,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// Validator verifies access tokens with an RSA public key.
type Validator struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// NewValidator parses the PEM encoded public key.
func NewValidator(publicKeyPEM string) (*Validator, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Validator{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// Validate parses token and returns the principal it was issued for. Any
// problem with the token is reported as UNAUTHORIZED.
func (v *Validator) Validate(token string) (domain.Principal, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, serrors.Wrap(serrors.ErrUnauthorized, err, "token expired")
		}

		return domain.Principal{}, serrors.Wrap(serrors.ErrUnauthorized, err, "could not validate credentials")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Principal{}, serrors.Wrap(serrors.ErrUnauthorized, err, "could not validate credentials")
	}
	if !claims.Scope.Valid() {
		return domain.Principal{}, serrors.With(serrors.ErrUnauthorized, "could not validate credentials")
	}

	return domain.Principal{
		ID:    domain.UserID(id),
		Email: claims.Email,
		Scope: claims.Scope,
	}, nil
}
