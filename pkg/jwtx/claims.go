package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTLs. Services normally override these from configuration;
// the defaults match the usual 15m access / 7d refresh policy.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenTypeRefresh is the value of the "type" claim carried by refresh
// tokens. Access tokens carry no "type" claim at all.
const TokenTypeRefresh = "refresh"

// Claims is the flat claim set embedded in every token: a subject, an
// expiry, and for refresh tokens a type tag.
type Claims struct {
	jwt.RegisteredClaims

	Type string `json:"type,omitempty"`
}

// NewAccessClaims builds the claim set for an access token: {sub, exp}.
// The expiry is absolute UTC, now+ttl, so a zero ttl yields a token that is
// already expired at issuance.
func NewAccessClaims(subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.UTC().Add(ttl)),
		},
	}
}

// NewRefreshClaims builds the claim set for a refresh token:
// {sub, type: "refresh", exp}.
func NewRefreshClaims(subject string, ttl time.Duration, now time.Time) Claims {
	c := NewAccessClaims(subject, ttl, now)
	c.Type = TokenTypeRefresh
	return c
}

// IsRefresh reports whether the claims belong to a refresh token.
func (c *Claims) IsRefresh() bool {
	return c.Type == TokenTypeRefresh
}
