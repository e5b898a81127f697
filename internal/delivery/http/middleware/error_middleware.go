package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/delivery/http/response"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error
// becomes a {"detail": ...} body; only errors carrying an AppError expose
// their message, everything else gets the generic 500 answer.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}
		_ = response.Detail(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// Echo raises these for binding and validation failures; the message
		// may contain struct internals, so serve the generic payload answer.
		detail := domainerrors.ErrValidationFailed.Message()
		if httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed {
			detail = http.StatusText(httpErr.Code)
		}
		_ = response.Detail(c, httpErr.Code, detail)

		return
	}

	m.logError(err, c)

	_ = response.Detail(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
