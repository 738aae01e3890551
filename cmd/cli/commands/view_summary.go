package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chayal-connect/matchmaker/pkg/core/services"
)

// ViewSummaryCmd creates the viewSummary command
func ViewSummaryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSummary",
		Short: "Show coverage and quality statistics for the stored match set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := services.ViewSummary(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Println()
			printSummary(summary)
			return nil
		},
	}
}
