package middleware

import (
	"net/http/httptest"
	"testing"

	"toolverse/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := observability.Tracer
	observability.Tracer = tp.Tracer("test")
	t.Cleanup(func() { observability.Tracer = previous })
	return recorder
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func tracedApp() *fiber.App {
	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/health/live", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/api/tools/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/api/tools", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/api/user/tools", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusInternalServerError) })
	return app
}

func TestTracingMiddleware_NamesSpanByRoute(t *testing.T) {
	recorder := recordSpans(t)

	resp, err := tracedApp().Test(httptest.NewRequest("GET", "/api/tools/42", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "GET /api/tools/:id", ended[0].Name())
	attrs := spanAttrs(ended[0])
	assert.Equal(t, "/api/tools/:id", attrs["http.route"].AsString())
	assert.Equal(t, "tools", attrs["catalog.resource"].AsString())
	assert.Equal(t, int64(200), attrs["http.status_code"].AsInt64())
}

func TestTracingMiddleware_TagsListFilters(t *testing.T) {
	recorder := recordSpans(t)

	_, err := tracedApp().Test(httptest.NewRequest("GET", "/api/tools?category=Writing&search=gpt", nil))
	require.NoError(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	attrs := spanAttrs(ended[0])
	assert.Equal(t, "Writing", attrs["catalog.filter.category"].AsString())
	assert.True(t, attrs["catalog.filter.search"].AsBool())
	_, hasPricing := attrs["catalog.filter.pricing"]
	assert.False(t, hasPricing)
}

func TestTracingMiddleware_ServerErrorMarksSpan(t *testing.T) {
	recorder := recordSpans(t)

	_, err := tracedApp().Test(httptest.NewRequest("GET", "/api/user/tools", nil))
	require.NoError(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "user_tools", spanAttrs(ended[0])["catalog.resource"].AsString())
}

func TestTracingMiddleware_SkipsProbes(t *testing.T) {
	recorder := recordSpans(t)

	resp, err := tracedApp().Test(httptest.NewRequest("GET", "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("X-Trace-ID"))
	assert.Empty(t, recorder.Ended())
}

func TestCatalogResource(t *testing.T) {
	tests := map[string]string{
		"/api/tools":             "tools",
		"/api/tools/compare":     "tools",
		"/api/blog/1":            "blog_posts",
		"/api/user":              "users",
		"/api/users":             "users",
		"/api/user/tools/3":      "user_tools",
		"/api/toolsmith":         "",
		"/api/metrics/dashboard": "",
	}
	for path, want := range tests {
		assert.Equal(t, want, catalogResource(path), path)
	}
}
