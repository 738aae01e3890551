package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/core/matcher"
	"github.com/chayal-connect/matchmaker/pkg/db"
)

// ViewSummaryStore defines the database operations needed to
// summarize the stored match set
type ViewSummaryStore interface {
	db.StudentStore
	db.SoldierStore
	db.MatchStore
}

// ViewSummary recomputes coverage and quality statistics over the
// stored match set. Statistics are derived, never persisted, so this
// always reflects the current state including review decisions.
func ViewSummary(ctx context.Context, database ViewSummaryStore, logger *zap.Logger) (*matcher.Summary, error) {
	logger.Debug("Computing match summary")

	dbMatches, err := database.GetMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	dbStudents, err := database.GetStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	dbSoldiers, err := database.GetSoldiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch soldiers: %w", err)
	}

	summary := matcher.Summarize(
		toMatcherMatches(dbMatches),
		toModelStudents(dbStudents),
		toModelSoldiers(dbSoldiers))

	logger.Debug("Summary computed",
		zap.Int("matches", summary.TotalMatches),
		zap.Int("soldiers", summary.TotalSoldiers),
		zap.Int("students", summary.TotalStudents))

	return &summary, nil
}
