package middleware

import (
	"fmt"
	"strings"

	"toolverse/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// untracedPrefixes are probe and scrape endpoints that would only add noise to traces.
var untracedPrefixes = []string{"/health", "/metrics"}

// catalogResources maps API path prefixes onto the catalog collection they serve.
// Longer prefixes come first so /api/user/tools wins over /api/user.
var catalogResources = []struct {
	prefix   string
	resource string
}{
	{"/api/user/tools", "user_tools"},
	{"/api/user", "users"},
	{"/api/users", "users"},
	{"/api/tools", "tools"},
	{"/api/blog", "blog_posts"},
}

// catalogResource names the collection behind path, or "" for non-catalog routes.
func catalogResource(path string) string {
	for _, r := range catalogResources {
		if path == r.prefix || strings.HasPrefix(path, r.prefix+"/") {
			return r.resource
		}
	}
	return ""
}

// TracingMiddleware starts a server span per request. Spans are named by the matched
// route template (GET /api/tools/:id) and tagged with the catalog collection and any
// list filters the request carries.
func TracingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, prefix := range untracedPrefixes {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), propagation.HeaderCarrier(c.GetReqHeaders()))

		attrs := []attribute.KeyValue{
			attribute.String("http.method", c.Method()),
			attribute.String("http.path", c.Path()),
			attribute.String("http.ip", c.IP()),
			attribute.String("http.user_agent", c.Get("User-Agent")),
		}
		if resource := catalogResource(c.Path()); resource != "" {
			attrs = append(attrs, attribute.String("catalog.resource", resource))
		}
		for _, key := range []string{"category", "pricing", "featured"} {
			if v := c.Query(key); v != "" {
				attrs = append(attrs, attribute.String("catalog.filter."+key, v))
			}
		}
		if c.Query("search") != "" {
			attrs = append(attrs, attribute.Bool("catalog.filter.search", true))
		}

		ctx, span := observability.Tracer.Start(ctx, c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		traceID := span.SpanContext().TraceID().String()
		c.Locals("traceID", traceID)
		c.Locals("spanID", span.SpanContext().SpanID().String())
		if requestID := c.Locals("requestid"); requestID != nil {
			span.SetAttributes(attribute.String("request.id", fmt.Sprintf("%v", requestID)))
		}
		c.Set("X-Trace-ID", traceID)
		c.SetUserContext(ctx)

		err := c.Next()

		// the route is only known once routing has run
		if route := c.Route(); route != nil && route.Path != "" && route.Path != "/" {
			span.SetName(c.Method() + " " + route.Path)
			span.SetAttributes(attribute.String("http.route", route.Path))
		}

		status := c.Response().StatusCode()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		}

		if userID := c.Locals("userID"); userID != nil {
			span.SetAttributes(attribute.String("user.id", fmt.Sprintf("%v", userID)))
		}

		return err
	}
}
