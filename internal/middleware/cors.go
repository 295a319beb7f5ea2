package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func (m *middleware) NewCORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  m.allowOrigins,
		AllowMethods:  strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodHead, fiber.MethodOptions}, ","),
		AllowHeaders:  strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, RequestIDKey}, ","),
		ExposeHeaders: RequestIDKey,
	})
}
