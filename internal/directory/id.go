package directory

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slug lowercases a name and collapses it to hyphen-separated ASCII tokens.
// "Michael O’Neill" becomes "michael-oneill".
func Slug(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}

// NewID builds an employee ID from the slugified name and a timestamp.
// The timestamp suffix keeps IDs unique when names repeat.
func NewID(name string, now time.Time) string {
	slug := Slug(name)
	if slug == "" {
		slug = "employee"
	}
	return fmt.Sprintf("%s-%d", slug, now.UnixMilli())
}
