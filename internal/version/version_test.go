package version

import (
	"strings"
	"testing"
)

// Тесты мутируют глобальный BuildDate, поэтому без t.Parallel.

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch day", date: "2024-01-01", expected: 0},
		{name: "next day", date: "2024-01-02", expected: 1},
		{name: "one leap year later", date: "2025-01-01", expected: 366},
		{name: "far from epoch", date: "2026-08-23", expected: 965},
		{name: "before epoch", date: "2023-12-31", wantError: true},
		{name: "garbage date", date: "not-a-date", wantError: true},
		{name: "empty date", date: "", wantError: true},
	}

	preserveBuildDate(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			BuildDate = tt.date

			id, err := CalculateBuildID()
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error for %q, got build id %d", tt.date, id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.date, err)
			}
			if id != tt.expected {
				t.Errorf("build id for %q = %d, expected %d", tt.date, id, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	preserveBuildDate(t)

	BuildDate = "2024-01-02"
	info := Info()
	if !info.Calculated {
		t.Fatalf("expected calculated info, got error %q", info.Error)
	}
	if info.BuildID != 1 {
		t.Errorf("BuildID = %d, expected 1", info.BuildID)
	}
	if info.BuildDate != "2024-01-02" {
		t.Errorf("BuildDate = %q, expected 2024-01-02", info.BuildDate)
	}

	BuildDate = ""
	info = Info()
	if info.Calculated {
		t.Error("expected uncalculated info for empty BuildDate")
	}
	if info.Error == "" {
		t.Error("expected error message for empty BuildDate")
	}
}

func TestString(t *testing.T) {
	preserveBuildDate(t)

	BuildDate = "2024-01-02"
	s := String()
	if !strings.Contains(s, "build 1") {
		t.Errorf("String() = %q, expected it to mention build 1", s)
	}

	BuildDate = ""
	s = String()
	if !strings.Contains(s, "dev build") {
		t.Errorf("String() = %q, expected dev build marker", s)
	}
}

func preserveBuildDate(t *testing.T) {
	t.Helper()
	orig := BuildDate
	t.Cleanup(func() { BuildDate = orig })
}
