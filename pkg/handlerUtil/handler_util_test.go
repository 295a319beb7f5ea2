package handlerUtil

import (
	"StimulusAssistant/pkg/response"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("APP_ENV", "test")
	_ = os.Setenv("LOG_LEVEL", "panic")
	os.Exit(m.Run())
}

func serve(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	h := New(logger)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, c.Path(), "test")
	})

	resp, testErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body ErrorResponse
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandle(t *testing.T) {
	t.Run("response error keeps status", func(t *testing.T) {
		status, body := serve(t, fmt.Errorf("wrapped: %w", response.NewError(fiber.StatusTeapot, "short and stout")))
		assert.Equal(t, fiber.StatusTeapot, status)
		assert.Contains(t, body.Error, "short and stout")
	})

	t.Run("wrapped cause keeps status", func(t *testing.T) {
		status, body := serve(t, response.Wrap(fiber.StatusRequestTimeout, fmt.Errorf("typing: %w", context.Canceled)))
		assert.Equal(t, fiber.StatusRequestTimeout, status)
		assert.Equal(t, "typing: context canceled", body.Error)
	})

	t.Run("deadline", func(t *testing.T) {
		status, _ := serve(t, context.DeadlineExceeded)
		assert.Equal(t, fiber.StatusRequestTimeout, status)
	})

	t.Run("unexpected", func(t *testing.T) {
		status, body := serve(t, errors.New("boom"))
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "req-1", body.TraceID)
		assert.NotContains(t, body.Error, "boom")
	})
}
