package viewmodel

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var viewModelTracer = otel.Tracer("matchvision/internal/viewmodel")
var viewModelNoopSpan = trace.SpanFromContext(context.Background())

// startViewModelSpan only opens a span under an existing one, so screens
// driven outside a traced request stay silent.
func startViewModelSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, viewModelNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, viewModelNoopSpan
	}
	return viewModelTracer.Start(ctx, name)
}
