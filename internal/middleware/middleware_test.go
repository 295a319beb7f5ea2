package middleware

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	m := New(logger, Config{AllowOrigins: "https://stimulus.org.in"})

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Use(m.NewRecoverMiddleware())
	app.Use(m.NewLoggingMiddleware())
	app.Use(m.NewCORSMiddleware())

	app.Post("/echo", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("kaboom")
	})

	return app, hook
}

func TestRequestID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/echo", nil))
	require.NoError(t, err)
	generated := resp.Header.Get(RequestIDKey)
	_, parseErr := ulid.Parse(generated)
	assert.NoError(t, parseErr)

	req := httptest.NewRequest(fiber.MethodPost, "/echo", nil)
	req.Header.Set(RequestIDKey, "caller-42")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "caller-42", resp.Header.Get(RequestIDKey))
}

type failingIDs struct{}

func (failingIDs) NewULIDFromTimestamp(time.Time) (string, error) {
	return "", errors.New("entropy exhausted")
}

func TestRequestID_FallsBackToUUID(t *testing.T) {
	logger, hook := test.NewNullLogger()

	app := fiber.New()
	app.Use(newRequestIDMiddleware(failingIDs{}, logger).handler())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	_, parseErr := uuid.Parse(resp.Header.Get(RequestIDKey))
	assert.NoError(t, parseErr)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestLoggingShortensMessages(t *testing.T) {
	app, hook := newTestApp(t)

	body := `{"message":"` + strings.Repeat("z", 400) + `"}`
	req := httptest.NewRequest(fiber.MethodPost, "/echo", bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err := app.Test(req)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Success", entry.Message)
	assert.Equal(t, fiber.StatusOK, entry.Data["status"])
	logged, _ := entry.Data["request_body"].(string)
	assert.Contains(t, logged, strings.Repeat("z", 117)+"...")
	assert.NotContains(t, logged, strings.Repeat("z", 118))
}

func TestLoggingNonJSONBody(t *testing.T) {
	assert.Equal(t, "[non-JSON body]", shortenRequestBody([]byte("message=hi")))
}

func TestRecover(t *testing.T) {
	app, hook := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var recovered bool
	for _, e := range hook.AllEntries() {
		if e.Message == "Recovered from panic" {
			recovered = true
			assert.Equal(t, "kaboom", e.Data["panic"])
		}
	}
	assert.True(t, recovered)
}

func TestCORS(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodOptions, "/echo", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://stimulus.org.in")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodPost)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://stimulus.org.in", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
