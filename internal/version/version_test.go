package version

import (
	"errors"
	"testing"
)

func TestBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-01-01", expected: 0},
		{name: "next day", date: "2026-01-02", expected: 1},
		{name: "one year later", date: "2027-01-01", expected: 365},
		{name: "leap year included", date: "2029-01-01", expected: 1096},
		{name: "invalid format", date: "01/02/2026", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildID(tt.date)

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("BuildID(%q) = %d, want %d", tt.date, got, tt.expected)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()

	BuildDate, BuildCommit = "", ""
	info := Current()
	if !errors.Is(info.Err, ErrNoBuildDate) {
		t.Errorf("Err = %v, want ErrNoBuildDate", info.Err)
	}
	if got, want := info.String(), "rustlike dev build commit[unknown]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	BuildDate, BuildCommit = "2026-01-11", "abc123"
	if got, want := Current().String(), "rustlike build 10 (2026-01-11) commit[abc123]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
