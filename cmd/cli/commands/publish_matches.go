package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chayal-connect/matchmaker/pkg/clients/sheetsclient"
	"github.com/chayal-connect/matchmaker/pkg/core/services"
)

// PublishMatchesCmd creates the publishMatches command
func PublishMatchesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishMatches",
		Short: "Publish the anonymized match set to Google Sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cfg.OAuth == nil {
				return fmt.Errorf("no oauth credentials configured")
			}

			// The sheets client is built here rather than at startup so
			// the OAuth flow only runs when publishing is requested
			client, err := sheetsclient.NewClient(app.Ctx, app.Cfg.OAuth, app.Env)
			if err != nil {
				return fmt.Errorf("failed to create sheets client: %w", err)
			}

			count, err := services.PublishMatches(app.Ctx, app.Database, client, app.Logger, app.Cfg.MatchSheetID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Published %d matches to sheet %s\n", count, app.Cfg.MatchSheetID)
			return nil
		},
	}
}
