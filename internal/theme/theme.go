// Package theme persists the light/dark flag — the only state that survives
// a restart.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Theme values.
const (
	Light = "light"
	Dark  = "dark"
)

// FileName is the well-known key the flag is stored under.
const FileName = "theme"

// Valid reports whether v is a known theme value.
func Valid(v string) bool {
	return v == Light || v == Dark
}

// Load reads the persisted theme from dir, defaulting to Light when the
// file is missing or holds an unknown value.
func Load(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return Light
	}
	v := strings.TrimSpace(string(data))
	if !Valid(v) {
		return Light
	}
	return v
}

// Save writes the theme flag. The write holds an exclusive flock since both
// the CLI and a running server may update it.
func Save(dir, v string) error {
	if !Valid(v) {
		return fmt.Errorf("invalid theme %q (use %s or %s)", v, Light, Dark)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open theme file: %w", err)
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("lock theme file: %w", err)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	if _, err := f.WriteString(v + "\n"); err != nil {
		return fmt.Errorf("write theme file: %w", err)
	}
	return nil
}
