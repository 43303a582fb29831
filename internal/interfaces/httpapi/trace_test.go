package httpapi

import (
	"context"
	"testing"
)

func TestIsHandlerSpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.ListMatches", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHandlerSpan(tt.in); got != tt.want {
				t.Fatalf("isHandlerSpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartSpan_NoParentReturnsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.Healthz")
	if got != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span without a parent")
	}
}
