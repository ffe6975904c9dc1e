package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/microposts/posts-api/internal/api/metrics"
	"github.com/microposts/posts-api/internal/core/domain"
)

// PrincipalKey is the echo context key under which Auth stores the resolved
// Principal.
const PrincipalKey = "principal"

// TokenVerifier resolves a raw bearer token to a Principal.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// Auth extracts the bearer credential from the Authorization header,
// verifies it, and injects the resulting Principal into the request context.
// It short-circuits before any business logic on failure; the central error
// handler maps the domain errors to 401.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return reject(domain.ErrTokenMissing)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(domain.ErrTokenMissing)
			}

			principal, err := tokens.Verify(parts[1])
			if err != nil {
				return reject(err)
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

func reject(err error) error {
	metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
	return err
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenMissing):
		return "missing"
	case errors.Is(err, domain.ErrTokenSignature):
		return "bad_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}
