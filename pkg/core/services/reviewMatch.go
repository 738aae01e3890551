package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/core/model"
	"github.com/chayal-connect/matchmaker/pkg/db"
)

// ReviewMatch records a reviewer's decision on a suggested match.
// Review decisions are the only incremental edits the match set
// supports; a fresh matching run replaces them wholesale.
func ReviewMatch(ctx context.Context, database db.MatchStore, logger *zap.Logger, matchID string, status model.MatchStatus) error {
	if matchID == "" {
		return fmt.Errorf("match ID must not be empty")
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid match status %q", status)
	}

	logger.Debug("Updating match status",
		zap.String("match_id", matchID),
		zap.String("status", string(status)))

	if err := database.UpdateMatchStatus(ctx, matchID, string(status)); err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}

	logger.Info("Match reviewed",
		zap.String("match_id", matchID),
		zap.String("status", string(status)))
	return nil
}
