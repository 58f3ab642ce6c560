package middleware

import (
	"log/slog"
	"net/http"

	"nutria/internal/delivery/api/response"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/errors"
	logs "nutria/internal/infra/log"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the echo HTTPErrorHandler. Domain errors keep their
// code and details, everything else is reduced to a status envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.logUnhandled(c, err)
		}
		_ = response.AppErrorResponse(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		_ = response.Error(c, httpErr.Code, response.CodeForStatus(httpErr.Code), message, nil)

		return
	}

	m.logUnhandled(c, err)

	_ = response.InternalServerError(c, response.CodeForStatus(http.StatusInternalServerError),
		"Internal server error, please try again later")
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	logs.FromContext(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
