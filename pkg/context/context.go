package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type ctxKey string

const (
	// RequestIDHeader is both the header and the fiber local holding the id.
	RequestIDHeader = "X-Request-ID"

	requestIDKey ctxKey = "request_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx starts a request context carrying the id set by the
// request-id middleware, or the caller's header when the middleware
// did not run.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(RequestIDHeader).(string)
	if !ok || requestID == "" {
		requestID = c.Get(RequestIDHeader)

		if requestID == "" {
			requestID = "unknown"
		}
	}

	return WithRequestID(c.UserContext(), requestID)
}
