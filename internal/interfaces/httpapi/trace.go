package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("matchvision/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan only opens handler spans, and only below a request span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !isHandlerSpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
