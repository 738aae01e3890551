package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/core/matcher"
	"github.com/chayal-connect/matchmaker/pkg/core/services"
)

// RunMatchingCmd creates the runMatching command
func RunMatchingCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runMatching",
		Short: "Run the matching engine and replace the stored match set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("runMatching command", zap.Bool("dry_run", dryRun))

			result, err := services.RunMatching(app.Ctx, app.Database, app.Geo, app.Languages, app.Logger, dryRun)
			if err != nil {
				return err
			}

			if result.DryRun {
				fmt.Printf("\n✓ Dry run complete - nothing was saved\n\n")
			} else {
				fmt.Printf("\n✓ Matching complete!\n\n")
			}

			printSummary(&result.Summary)

			if dryRun && len(result.Matches) > 0 {
				fmt.Println("Matches:")
				for _, m := range result.Matches {
					fmt.Printf("  rank %d  %-12s -> %-12s  score %3d\n",
						m.Rank, m.StudentID, m.SoldierID, m.Score)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Compute matches without saving them")
	return cmd
}

// printSummary renders a match summary for the terminal
func printSummary(summary *matcher.Summary) {
	fmt.Printf("Soldiers: %d total, %d fully matched, %d with one match, %d unmatched\n",
		summary.TotalSoldiers,
		summary.SoldiersWithTwoMatches,
		summary.SoldiersWithOneMatch,
		summary.SoldiersWithNoMatch)
	fmt.Printf("Students: %d total, %d used, %d not used\n",
		summary.TotalStudents,
		summary.StudentsUsed,
		summary.StudentsNotUsed)
	fmt.Printf("Matches:  %d total (high %d / medium %d / low %d), average score %.1f\n\n",
		summary.TotalMatches,
		summary.HighScoreMatches,
		summary.MediumScoreMatches,
		summary.LowScoreMatches,
		summary.AverageScore)
}
