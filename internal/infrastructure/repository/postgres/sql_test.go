package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation user_profiles does not exist")) {
		t.Fatalf("expected unrelated error to be reported")
	}
}

func TestNullStringPtr(t *testing.T) {
	if nullStringPtr(sql.NullString{}) != nil {
		t.Fatalf("expected nil for NULL")
	}
	got := nullStringPtr(sql.NullString{String: "x", Valid: true})
	if got == nil || *got != "x" {
		t.Fatalf("unexpected value %v", got)
	}
}
