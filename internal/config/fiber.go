package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const bodyLimit = 64 * 1024

func NewFiber(logger *logrus.Logger, env *Env) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:               env.AppName,
			BodyLimit:             bodyLimit,
			DisableKeepalive:      false,
			StrictRouting:         true,
			CaseSensitive:         true,
			EnablePrintRoutes:     env.AppEnv == EnvDevelopment,
			DisableStartupMessage: env.AppEnv == EnvTest,
			JSONEncoder:           jsoniter.Marshal,
			JSONDecoder:           jsoniter.Unmarshal,
			ErrorHandler:          newErrorHandler(logger),
		})

	return app
}

// newErrorHandler renders errors that escaped the handlers, such as
// unknown routes or recovered panics, as JSON.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "An unexpected error occurred"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Error("Unhandled error")
		}

		return c.Status(code).JSON(fiber.Map{
			"error": message,
		})
	}
}
