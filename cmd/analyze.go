package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boozedog/smoovboard/internal/extract"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [description]",
	Short: "Break a project description into suggested tickets",
	Long:  `Sends a project description to the AI planner, which proposes tickets with assignees drawn from the directory. Proposals land in a pending pool; review them with "smoovboard suggestions" and promote them with "smoovboard accept". Requires GEMINI_API_KEY on the server.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

var analyzeFile string

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "read the description from a text or markdown file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var description string
	switch {
	case analyzeFile != "":
		f, err := os.Open(analyzeFile)
		if err != nil {
			return err
		}
		defer f.Close()
		description, err = extract.Text(filepath.Base(analyzeFile), f)
		if err != nil {
			return err
		}
	case len(args) == 1:
		description = strings.TrimSpace(args[0])
	}
	if description == "" {
		return fmt.Errorf("a project description is required: pass it as an argument or with -f")
	}

	result, err := apiClient().Analyze(cmd.Context(), description)
	if err != nil {
		return err
	}
	if !result.Published {
		fmt.Println("Analysis superseded by a newer request; no suggestions published.")
		return nil
	}

	fmt.Printf("%d suggestion(s):\n", len(result.Tasks))
	for _, task := range result.Tasks {
		fmt.Printf("  %s  %s  %s → %s  due %s\n",
			task.ID, truncate(task.Title, 50), task.SuggestedDepartment, task.SuggestedAssigneeID, task.SuggestedDueDate)
	}
	return nil
}
