package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// HeaderProcessTime carries the server-side handling time in seconds.
const HeaderProcessTime = "X-Process-Time"

// ProcessTime adds the request processing time to the response headers.
func ProcessTime() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				elapsed := time.Since(start).Seconds()
				c.Response().Header().Set(HeaderProcessTime, strconv.FormatFloat(elapsed, 'f', 6, 64))
			})
			return next(c)
		}
	}
}
