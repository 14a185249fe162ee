package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RateLimiter is a fixed-window limiter keyed by the raw X-User-ID header, falling back
// to the client IP. It runs before identity resolution, so unknown ids are counted too.
func RateLimiter(limit int, window time.Duration, logger *zap.Logger) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := "ip:" + c.RealIP()
			if id := strings.TrimSpace(c.Request().Header.Get(HeaderUserID)); id != "" {
				key = "user:" + id
			}

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				logger.Warn("rate limit exceeded", zap.String("key", key), zap.String("path", c.Path()))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}
