package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// errorResponse is the canonical error envelope. Message carries the
// human-readable text; Error carries the underlying cause, present only on
// persistence failures.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent JSON envelope {"message": …} / {"message", "error"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Message: ve.Mensaje}
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, errorResponse{Message: nf.Error()}
	}

	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		log.Error().Err(pe.Causa).Str("method", c.Request().Method).Str("path", c.Path()).Msg(pe.Mensaje)
		body := errorResponse{Message: pe.Mensaje}
		if pe.Causa != nil {
			body.Error = pe.Causa.Error()
		}
		return http.StatusInternalServerError, body
	}

	switch {
	case errors.Is(err, domain.ErrCredencialesInvalidas), errors.Is(err, domain.ErrCuentaInactiva):
		return http.StatusUnauthorized, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrAccesoDenegado):
		return http.StatusForbidden, errorResponse{Message: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "Error interno del servidor"}
}
