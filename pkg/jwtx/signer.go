package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Configuration errors. These are fatal: a service without a usable signing
// secret must not start.
var (
	ErrEmptySecret          = errors.New("jwtx: signing secret is empty")
	ErrUnsupportedAlgorithm = errors.New("jwtx: unsupported signing algorithm")
)

// Verification errors, one per cause so callers can tell them apart.
var (
	ErrMalformed = errors.New("jwtx: malformed token")
	ErrSignature = errors.New("jwtx: invalid token signature")
	ErrExpired   = errors.New("jwtx: token expired")
)

// Config holds the process-wide signing settings, loaded once at startup.
type Config struct {
	Secret     string        // HMAC signing secret, required
	Algorithm  string        // HS256, HS384 or HS512
	AccessTTL  time.Duration // default access token lifetime
	RefreshTTL time.Duration // refresh token lifetime
}

// Signer issues and verifies HMAC-signed tokens. It is stateless apart from
// its immutable configuration and safe for concurrent use.
type Signer struct {
	secret     []byte
	method     *jwt.SigningMethodHMAC
	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time
}

// NewSigner validates the configuration and returns a ready Signer.
// An empty secret or an unknown algorithm is a configuration error.
func NewSigner(cfg Config) (*Signer, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}

	var method *jwt.SigningMethodHMAC
	switch cfg.Algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}

	s := &Signer{
		secret:     []byte(cfg.Secret),
		method:     method,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
	if s.accessTTL == 0 {
		s.accessTTL = DefaultAccessTokenTTL
	}
	if s.refreshTTL == 0 {
		s.refreshTTL = DefaultRefreshTokenTTL
	}

	return s, nil
}

// Alg returns the configured algorithm tag, e.g. "HS256".
func (s *Signer) Alg() string { return s.method.Alg() }

// AccessTTL returns the default access token lifetime.
func (s *Signer) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL returns the refresh token lifetime.
func (s *Signer) RefreshTTL() time.Duration { return s.refreshTTL }

// CreateAccessToken signs an access token for subject using the default TTL.
func (s *Signer) CreateAccessToken(subject string) (string, error) {
	return s.CreateAccessTokenTTL(subject, s.accessTTL)
}

// CreateAccessTokenTTL signs an access token with a per-call TTL override.
func (s *Signer) CreateAccessTokenTTL(subject string, ttl time.Duration) (string, error) {
	return s.sign(NewAccessClaims(subject, ttl, s.now()))
}

// CreateRefreshToken signs a refresh token for subject. The claims carry
// type="refresh" so the token cannot be replayed as an access token.
func (s *Signer) CreateRefreshToken(subject string) (string, error) {
	return s.sign(NewRefreshClaims(subject, s.refreshTTL, s.now()))
}

func (s *Signer) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Failures map
// to a distinct error per cause: ErrMalformed, ErrSignature or ErrExpired.
func (s *Signer) Verify(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		default:
			return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}
	return claims, nil
}
