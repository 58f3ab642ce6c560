package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"nutria/config"
	deliverycontext "nutria/internal/delivery/context"
	logs "nutria/internal/infra/log"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Writes are always
// logged since they change stored foods; reads only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	now    func() time.Time
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		now:    time.Now,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug && isRead(c.Request().Method) {
			return next(c)
		}

		start := m.now()
		err := next(c)
		// The error handler has not run yet; let it commit the response
		// so the logged status is the one the client sees.
		if err != nil && !c.Response().Committed {
			c.Error(err)
		}
		m.logRequest(c, m.now().Sub(start), err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if key := c.Param("key"); key != "" {
		attrs = append(attrs, slog.String("food", key))
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		attrs = append(attrs, slog.Uint64("user_id", uint64(userID)))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case res.Status >= http.StatusInternalServerError:
		level = slog.LevelError
	case res.Status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	logs.FromContext(req.Context(), m.logger).LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}

func isRead(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
