package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/escalation-service/internal/observability"
	"github.com/spec-kit/escalation-service/internal/workflow"
)

func newMiddlewareTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	app := fiber.New()
	metrics := observability.NewMetrics()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second)
	return app, metrics
}

func TestErrorMiddleware_EnvelopeAndStatus(t *testing.T) {
	app, _ := newMiddlewareTestApp(t)
	app.Get("/blocked", func(c *fiber.Ctx) error {
		return workflow.ErrUnauthorizedAction
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/blocked", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "UNAUTHORIZED_ACTION", envelope["code"])
	assert.NotEmpty(t, envelope["message"])
}

func TestRequestMetricsRecordFinalStatus(t *testing.T) {
	app, metrics := newMiddlewareTestApp(t)
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return workflow.ErrConcurrentModification
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The request log sits outside error conversion, so the recorded status
	// is the one the client received.
	assert.EqualValues(t, 1, metrics.RequestCount("/conflict", http.MethodGet, http.StatusConflict))
	assert.EqualValues(t, 0, metrics.RequestCount("/conflict", http.MethodGet, http.StatusOK))
	assert.EqualValues(t, 1, metrics.RequestCount("/ok", http.MethodGet, http.StatusOK))
}
