// Package context carries per-request values between the echo middleware
// chain, the handlers and the request context seen by usecases.
package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyUserID    ContextKey = "user_id"

	HeaderXRequestID = "X-Request-Id"
)

// BindRequestID stores requestID on the echo context, the request context
// and the response header.
func BindRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
	c.Response().Header().Set(HeaderXRequestID, requestID)

	req := c.Request()
	c.SetRequest(req.WithContext(WithRequestID(req.Context(), requestID)))
}

// GetRequestID returns the id bound to the request, or "" outside the
// request id middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return RequestIDFromContext(c.Request().Context())
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// SetUserID stores the id of the token subject.
func SetUserID(c echo.Context, userID uint) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the id stored by the auth middleware.
func GetUserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(string(KeyUserID)).(uint)

	return id, ok
}
