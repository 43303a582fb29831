package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &out); err != nil {
		t.Fatalf("decode log line: %v (raw=%q)", err, buf.String())
	}
	return out
}

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf, Service: "matchvision-api"})

	logger.With("component", "apisports").Warn("request failed", "status", 503, "error", errors.New("boom"))

	line := decodeLine(t, &buf)
	if line["level"] != "WARN" {
		t.Fatalf("expected WARN level, got %v", line["level"])
	}
	if line["msg"] != "request failed" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["service"] != "matchvision-api" {
		t.Fatalf("expected service field, got %v", line["service"])
	}
	if line["component"] != "apisports" {
		t.Fatalf("expected component field, got %v", line["component"])
	}
	if line["error"] != "boom" {
		t.Fatalf("expected error field, got %v", line["error"])
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
}

func TestLogger_TraceFieldsFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Output: &buf})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.InfoContext(ctx, "traced")

	line := decodeLine(t, &buf)
	if line["trace_id"] != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("unexpected trace_id: %v", line["trace_id"])
	}
	if line["span_id"] != "00f067aa0ba902b7" {
		t.Fatalf("unexpected span_id: %v", line["span_id"])
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.Named("x") == nil {
		t.Fatalf("expected named logger from nil receiver")
	}
}

func TestLogger_MirrorReceivesFilteredRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf})

	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	defer SetMirror(nil)

	logger.Debug("skipped")
	logger.Info("kept", "k", "v")

	if len(got) != 1 || got[0] != "info:kept" {
		t.Fatalf("unexpected mirrored records %v", got)
	}
}
