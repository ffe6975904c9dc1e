package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microposts/posts-api/internal/api/metrics"
	"github.com/microposts/posts-api/internal/core/domain"
)

// PayloadLimit rejects request bodies larger than maxBytes before any
// deserialization happens. The limit is inclusive: a body of exactly
// maxBytes passes. Requests that declare a Content-Length are rejected
// up front; chunked requests are capped with http.MaxBytesReader, which
// surfaces as *http.MaxBytesError during bind and maps to the same 413.
func PayloadLimit(maxBytes int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.ContentLength > maxBytes {
				metrics.PayloadRejectedTotal.Inc()
				return domain.ErrPayloadTooLarge
			}
			req.Body = http.MaxBytesReader(c.Response(), req.Body, maxBytes)
			return next(c)
		}
	}
}
