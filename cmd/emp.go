package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/boozedog/smoovboard/internal/api"
	"github.com/spf13/cobra"
)

var empCmd = &cobra.Command{
	Use:   "emp",
	Short: "Manage employees",
}

var empListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees grouped by department",
	RunE:  runEmpList,
}

var empAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an employee to a department",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmpAdd,
}

var empRmCmd = &cobra.Command{
	Use:   "rm <employee-id>",
	Short: "Remove an employee and their tickets",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmpRm,
}

var empEditCmd = &cobra.Command{
	Use:   "edit <employee-id>",
	Short: "Edit an employee, optionally moving departments",
	Long:  `Updates an employee's name, email, role or department. Tickets assigned to them pick up the new details.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEmpEdit,
}

var (
	empName       string
	empEmail      string
	empRole       string
	empDepartment string
	empRmYes      bool
)

func init() {
	empAddCmd.Flags().StringVar(&empEmail, "email", "", "email address")
	empAddCmd.Flags().StringVar(&empRole, "role", "", "job role")
	empAddCmd.Flags().StringVar(&empDepartment, "dept", "", "department name (required)")
	_ = empAddCmd.MarkFlagRequired("dept")

	empEditCmd.Flags().StringVar(&empName, "name", "", "new name")
	empEditCmd.Flags().StringVar(&empEmail, "email", "", "new email address")
	empEditCmd.Flags().StringVar(&empRole, "role", "", "new job role")
	empEditCmd.Flags().StringVar(&empDepartment, "dept", "", "new department")

	empRmCmd.Flags().BoolVar(&empRmYes, "yes", false, "skip the confirmation prompt")

	empCmd.AddCommand(empListCmd, empAddCmd, empRmCmd, empEditCmd)
	rootCmd.AddCommand(empCmd)
}

func runEmpList(cmd *cobra.Command, _ []string) error {
	departments, err := apiClient().Directory(cmd.Context())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, d := range departments {
		for _, e := range d.Members {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Role, e.Email, d.Name); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func runEmpAdd(cmd *cobra.Command, args []string) error {
	created, err := apiClient().AddEmployee(cmd.Context(), api.EmployeeRequest{
		Name:       args[0],
		Email:      empEmail,
		Role:       empRole,
		Department: empDepartment,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added %s (%s) to %s\n", created.Name, created.ID, empDepartment)
	return nil
}

func runEmpRm(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !empRmYes {
		ok, err := confirm(fmt.Sprintf("Remove %s and all of their tickets?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}
	if err := apiClient().RemoveEmployee(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", id)
	return nil
}

func runEmpEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	client := apiClient()

	// Unset flags keep the current values.
	departments, err := client.Directory(cmd.Context())
	if err != nil {
		return err
	}
	req := api.EmployeeRequest{}
	found := false
	for _, d := range departments {
		for _, e := range d.Members {
			if e.ID == id {
				req = api.EmployeeRequest{Name: e.Name, Email: e.Email, Role: e.Role, Department: d.Name}
				found = true
			}
		}
	}
	if !found {
		return fmt.Errorf("employee %q not found", id)
	}
	if empName != "" {
		req.Name = empName
	}
	if empEmail != "" {
		req.Email = empEmail
	}
	if empRole != "" {
		req.Role = empRole
	}
	if empDepartment != "" {
		req.Department = empDepartment
	}

	updated, err := client.EditEmployee(cmd.Context(), id, req)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s (%s)\n", updated.Name, updated.ID)
	return nil
}
