package main

import (
	"path/filepath"
	"testing"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	for _, bad := range []string{"0", "-2", "x"} {
		if _, err := parseSteps([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("1760000000"); err != nil || got != 1760000000 {
		t.Fatalf("unexpected version %d err=%v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if got, err := parseTarget("42"); err != nil || got != 42 {
		t.Fatalf("unexpected target %d err=%v", got, err)
	}
	if _, err := parseTarget("-42"); err == nil {
		t.Fatalf("expected error for negative target")
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want, _ := filepath.Abs(dir)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if _, err := resolveMigrationsDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error when nothing exists")
	}
}
