package directory

import (
	"strings"
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alice Ray", "alice-ray"},
		{"Michael O’Neill", "michael-oneill"},
		{"  spaced  out  ", "spaced-out"},
		{"snake_case_name", "snake-case-name"},
		{"Émile", "mile"},
		{"123 Go", "123-go"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.input); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	id := NewID("Alice Ray", now)
	if id != "alice-ray-1700000000000" {
		t.Errorf("NewID = %q", id)
	}

	// A name with no usable characters falls back to a generic slug.
	id = NewID("!!!", now)
	if !strings.HasPrefix(id, "employee-") {
		t.Errorf("fallback ID = %q", id)
	}
}
