package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/microposts/posts-api/internal/core/domain"
)

const defaultTokenLifetime = 30 * time.Minute

// TokenService issues and verifies HMAC-signed JWTs. The signing secret and
// algorithm are fixed at construction (from process config) and never
// mutated afterwards.
type TokenService struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenService builds a TokenService for the given symmetric secret.
// algorithm must name an HMAC scheme ("HS256", "HS384", "HS512"); anything
// else falls back to HS256. A non-positive lifetime falls back to 30 minutes.
func NewTokenService(secret, algorithm string, lifetime time.Duration) *TokenService {
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &TokenService{
		secret:   []byte(secret),
		method:   method,
		lifetime: lifetime,
		now:      time.Now,
	}
}

// WithClock overrides the time source. Intended for tests that need to sit
// exactly on the expiry boundary.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue produces a signed token for subject with iat=now and exp=now+lifetime.
func (s *TokenService) Issue(subject string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify parses and validates token, returning the Principal carried in its
// claims. The clock is read once per call (via jwt.WithTimeFunc) so the
// expiry comparison cannot straddle a boundary mid-verification. Expired
// tokens fail regardless of signature validity.
func (s *TokenService) Verify(token string) (domain.Principal, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Principal{}, domain.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Principal{}, domain.ErrTokenExpired
		default:
			return domain.Principal{}, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.Principal{}, domain.ErrTokenMalformed
	}

	return domain.Principal{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
