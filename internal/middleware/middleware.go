package middleware

import (
	"StimulusAssistant/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware interface {
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	NewCORSMiddleware() fiber.Handler
	NewRecoverMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type Config struct {
	// AllowOrigins is a comma separated origin list, "*" for any.
	AllowOrigins string
}

type middleware struct {
	loggingMiddleware   *loggingMiddleware
	requestIDMiddleware *requestIDMiddleware
	allowOrigins        string
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, cfg Config) Middleware {
	allowOrigins := cfg.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	return &middleware{
		loggingMiddleware:   newLoggingMiddleware(logger),
		requestIDMiddleware: newRequestIDMiddleware(utils.New(), logger),
		allowOrigins:        allowOrigins,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware.handler()
}
