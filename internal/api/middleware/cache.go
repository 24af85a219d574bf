package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salonvale/salon-system/internal/api/metrics"
	"github.com/salonvale/salon-system/internal/infrastructure/db/redis"
)

type bufferingWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bufferingWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *bufferingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves GET responses from Redis when a fresh copy exists, and stores
// successful responses on the way out. Entries expire by TTL only; writers do
// not purge, so a listing may lag a mutation by up to the TTL.
func Cache(store *redis.ResponseCache, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			path := c.Request().URL.RequestURI()
			body, ok, err := store.Get(c.Request().Context(), path)
			if err != nil {
				// a broken cache must not take the API down
				logger.Warn().Err(err).Str("path", path).Msg("response cache unavailable")
			}
			if ok {
				metrics.CacheTotal.WithLabelValues("hit").Inc()
				return c.JSONBlob(http.StatusOK, body)
			}
			metrics.CacheTotal.WithLabelValues("miss").Inc()

			w := &bufferingWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = w

			if err := next(c); err != nil {
				return err
			}

			if w.status == http.StatusOK && w.buf.Len() > 0 {
				if err := store.Set(c.Request().Context(), path, w.buf.Bytes()); err != nil {
					logger.Warn().Err(err).Str("path", path).Msg("response cache store failed")
				}
			}
			return nil
		}
	}
}
