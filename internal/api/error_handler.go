package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/springcrm/crm-api/internal/api/handler"
	"github.com/springcrm/crm-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the standard envelope: {"status": <code>, "error": "<message>", "data": null}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = handler.Fail(c, code, msg)
	}
}

// domainErrors maps each sentinel to its status code and public message.
// Order matters only for errors that wrap more than one sentinel.
var domainErrors = []struct {
	err  error
	code int
	msg  string
}{
	{domain.ErrEmailNotFound, http.StatusNotFound, "email not found"},
	{domain.ErrAccountNotFound, http.StatusNotFound, "account not found"},
	{domain.ErrOrganizationNotFound, http.StatusNotFound, "organization not found"},
	{domain.ErrClientNotFound, http.StatusNotFound, "client not found"},
	{domain.ErrTransactionNotFound, http.StatusNotFound, "transaction not found"},
	{domain.ErrEmailAlreadyInUse, http.StatusConflict, "email already in use"},
	{domain.ErrAccountNotActive, http.StatusForbidden, "account is not active"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
	{domain.ErrInvalidID, http.StatusBadRequest, "invalid id"},
	{domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, validation, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, de := range domainErrors {
		if errors.Is(err, de.err) {
			return de.code, de.msg
		}
	}

	// Unexpected error, including token creation failures: log the real
	// cause, return a generic message.
	log.Error().
		Err(err).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
