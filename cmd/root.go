package cmd

import (
	"fmt"
	"os"

	"github.com/boozedog/smoovboard/internal/api"
	"github.com/boozedog/smoovboard/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "smoovboard",
	Short:         "smoovboard — AI-assisted kanban board for teams",
	Long:          `A kanban board with an employee directory, a comment-gated workflow, and a Gemini-backed planner that breaks project descriptions into suggested tickets. Run "smoovboard serve" to start a session, then use the other commands (or the web UI) against it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootAddr string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootAddr, "addr", "", "session server address (default $SMOOVBOARD_ADDR or localhost:7321)")
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serverAddr resolves the session server address: --addr flag, then
// SMOOVBOARD_ADDR, then localhost on the default port.
func serverAddr() string {
	if rootAddr != "" {
		return rootAddr
	}
	if addr := os.Getenv("SMOOVBOARD_ADDR"); addr != "" {
		return addr
	}
	return fmt.Sprintf("localhost:%d", config.DefaultPort)
}

func apiClient() *api.Client {
	return api.NewClient(serverAddr())
}
