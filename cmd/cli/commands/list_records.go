package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListStudentsCmd creates the listStudents command
func ListStudentsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStudents",
		Short: "List all student records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := app.Database.GetStudents(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch students: %w", err)
			}

			if len(students) == 0 {
				fmt.Println("No students found.")
				return nil
			}

			fmt.Printf("\n%-12s %-20s %-8s %-16s %-12s %s\n",
				"ID", "Name", "Gender", "City", "Language", "Scholarship")
			for _, s := range students {
				fmt.Printf("%-12s %-20s %-8s %-16s %-12s %v\n",
					s.ID, s.FirstName+" "+s.LastName, s.Gender, s.City, s.Language, s.Scholarship)
			}
			fmt.Printf("\n%d students\n", len(students))
			return nil
		},
	}
}

// ListSoldiersCmd creates the listSoldiers command
func ListSoldiersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listSoldiers",
		Short: "List all soldier records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			soldiers, err := app.Database.GetSoldiers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch soldiers: %w", err)
			}

			if len(soldiers) == 0 {
				fmt.Println("No soldiers found.")
				return nil
			}

			fmt.Printf("\n%-12s %-20s %-8s %-10s %-16s %s\n",
				"ID", "Name", "Gender", "Prefers", "City", "Language")
			for _, s := range soldiers {
				fmt.Printf("%-12s %-20s %-8s %-10s %-16s %s\n",
					s.ID, s.FirstName+" "+s.LastName, s.Gender, s.PreferredGender, s.City, s.Language)
			}
			fmt.Printf("\n%d soldiers\n", len(soldiers))
			return nil
		},
	}
}
