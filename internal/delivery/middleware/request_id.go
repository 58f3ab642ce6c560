package middleware

import (
	"log/slog"

	deliverycontext "nutria/internal/delivery/context"
	logs "nutria/internal/infra/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 64

// RequestIDMiddleware assigns every request an id and a logger carrying it.
// A client supplied X-Request-Id is kept when it is short printable ASCII.
type RequestIDMiddleware struct {
	logger *slog.Logger
	newID  func() string
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
		newID:  func() string { return uuid.New().String() },
	}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !acceptableRequestID(requestID) {
			requestID = m.newID()
		}

		deliverycontext.BindRequestID(c, requestID)

		// Usecases and the gorm logger read the request logger from the context.
		reqLogger := m.logger.With(slog.String("request_id", requestID))
		req := c.Request()
		c.SetRequest(req.WithContext(logs.WithLogger(req.Context(), reqLogger)))

		return next(c)
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
