package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RemoveStudentCmd creates the removeStudent command
func RemoveStudentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeStudent <student_id>",
		Short: "Remove a student record and any matches referencing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Database.DeleteStudent(app.Ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove student: %w", err)
			}
			fmt.Printf("\n✓ Student %s removed\n", args[0])
			return nil
		},
	}
}

// RemoveSoldierCmd creates the removeSoldier command
func RemoveSoldierCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeSoldier <soldier_id>",
		Short: "Remove a soldier record and any matches referencing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Database.DeleteSoldier(app.Ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove soldier: %w", err)
			}
			fmt.Printf("\n✓ Soldier %s removed\n", args[0])
			return nil
		},
	}
}
