package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chayal-connect/matchmaker/pkg/core/model"
	"github.com/chayal-connect/matchmaker/pkg/core/services"
)

// ApproveMatchCmd creates the approveMatch command
func ApproveMatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approveMatch <match_id>",
		Short: "Approve a suggested match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ReviewMatch(app.Ctx, app.Database, app.Logger, args[0], model.StatusApproved); err != nil {
				return err
			}
			fmt.Printf("\n✓ Match %s approved\n", args[0])
			return nil
		},
	}
}

// RejectMatchCmd creates the rejectMatch command
func RejectMatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rejectMatch <match_id>",
		Short: "Reject a suggested match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ReviewMatch(app.Ctx, app.Database, app.Logger, args[0], model.StatusRejected); err != nil {
				return err
			}
			fmt.Printf("\n✓ Match %s rejected\n", args[0])
			return nil
		},
	}
}
