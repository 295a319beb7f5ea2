package middleware

import (
	contextPkg "StimulusAssistant/pkg/context"
	"StimulusAssistant/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDKey = contextPkg.RequestIDHeader

type requestIDMiddleware struct {
	ids utils.IUtils
	log *logrus.Logger
}

func newRequestIDMiddleware(ids utils.IUtils, logger *logrus.Logger) *requestIDMiddleware {
	return &requestIDMiddleware{
		ids: ids,
		log: logger,
	}
}

// handler keeps the caller's X-Request-ID or assigns a fresh one, and
// echoes it on the response.
func (m *requestIDMiddleware) handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)
		if requestID == "" {
			requestID = m.next()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}

// next prefers a time-ordered ULID and settles for a random UUID when
// the ULID entropy source fails.
func (m *requestIDMiddleware) next() string {
	id, err := m.ids.NewULIDFromTimestamp(time.Now())
	if err == nil && id != "" {
		return id
	}

	m.log.WithError(err).Warn("ULID generation failed, using a UUID request id")
	return uuid.NewString()
}
