package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chayal-connect/matchmaker/pkg/core/services"
)

// ImportStudentsCmd creates the importStudents command
func ImportStudentsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importStudents <csv_file>",
		Short: "Import student records from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			result, err := services.ImportStudents(app.Ctx, app.Database, app.Logger, file)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Imported %d students\n", result.Imported)
			return nil
		},
	}
}

// ImportSoldiersCmd creates the importSoldiers command
func ImportSoldiersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importSoldiers <csv_file>",
		Short: "Import soldier records from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			result, err := services.ImportSoldiers(app.Ctx, app.Database, app.Logger, file)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Imported %d soldiers\n", result.Imported)
			return nil
		},
	}
}
