package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chayal-connect/matchmaker/pkg/core/services"
)

// ExportMatchesCmd creates the exportMatches command
func ExportMatchesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportMatches",
		Short: "Export the stored match set as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			dst := os.Stdout
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer file.Close()
				dst = file
			}

			if err := services.ExportMatches(app.Ctx, app.Database, app.Logger, dst); err != nil {
				return err
			}

			if output != "" {
				fmt.Printf("\n✓ Matches exported to %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write CSV to a file instead of stdout")
	return cmd
}
