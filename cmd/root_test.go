package cmd

import (
	"fmt"
	"testing"

	"github.com/boozedog/smoovboard/internal/config"
)

func TestServerAddr(t *testing.T) {
	t.Setenv("SMOOVBOARD_ADDR", "")
	rootAddr = ""
	t.Cleanup(func() { rootAddr = "" })

	want := fmt.Sprintf("localhost:%d", config.DefaultPort)
	if got := serverAddr(); got != want {
		t.Errorf("default addr = %q, want %q", got, want)
	}

	t.Setenv("SMOOVBOARD_ADDR", "example.com:9000")
	if got := serverAddr(); got != "example.com:9000" {
		t.Errorf("env addr = %q, want example.com:9000", got)
	}

	// The --addr flag wins over the environment.
	rootAddr = "10.0.0.5:7000"
	if got := serverAddr(); got != "10.0.0.5:7000" {
		t.Errorf("flag addr = %q, want 10.0.0.5:7000", got)
	}
}
