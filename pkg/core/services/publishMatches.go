package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/clients/sheetsclient"
	"github.com/chayal-connect/matchmaker/pkg/db"
)

// MatchPublisher publishes an anonymized match set to an external
// sheet. Implemented by sheetsclient.Client.
type MatchPublisher interface {
	PublishMatches(spreadsheetID string, published *sheetsclient.PublishedMatches) error
}

// PublishMatches pushes the stored match set to the configured sheet.
// Rows carry only record IDs, scores, ranks and statuses so the sheet
// can be shared with coordinators without exposing personal data.
func PublishMatches(ctx context.Context, database db.MatchStore, publisher MatchPublisher, logger *zap.Logger, sheetID string) (int, error) {
	if sheetID == "" {
		return 0, fmt.Errorf("no match sheet configured")
	}

	logger.Debug("Publishing matches", zap.String("sheet_id", sheetID))

	matches, err := database.GetMatches(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch matches: %w", err)
	}
	if len(matches) == 0 {
		return 0, fmt.Errorf("no matches to publish, run matching first")
	}

	rows := make([]sheetsclient.PublishedMatchRow, len(matches))
	for i, m := range matches {
		rows[i] = sheetsclient.PublishedMatchRow{
			StudentID: m.StudentID,
			SoldierID: m.SoldierID,
			Score:     m.Score,
			Rank:      m.Rank,
			Status:    m.Status,
		}
	}

	published := &sheetsclient.PublishedMatches{
		RunDate: time.Now().UTC(),
		Rows:    rows,
	}

	if err := publisher.PublishMatches(sheetID, published); err != nil {
		return 0, fmt.Errorf("failed to publish matches: %w", err)
	}

	logger.Info("Published matches", zap.Int("count", len(rows)), zap.String("sheet_id", sheetID))
	return len(rows), nil
}
