package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func (m *middleware) NewRecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			m.log.WithFields(logrus.Fields{
				"request_id": m.GetRequestID(c),
				"path":       c.Path(),
				"panic":      fmt.Sprint(e),
			}).Error("Recovered from panic")
		},
	})
}
