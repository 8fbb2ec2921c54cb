package cmd

import (
	"fmt"

	"github.com/boozedog/smoovboard/internal/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the web UI theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	client := apiClient()
	if len(args) == 0 {
		current, err := client.Theme(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(current)
		return nil
	}

	value := args[0]
	if !theme.Valid(value) {
		return fmt.Errorf("unknown theme %q (want %s or %s)", value, theme.Light, theme.Dark)
	}
	if err := client.SetTheme(cmd.Context(), value); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", value)
	return nil
}
