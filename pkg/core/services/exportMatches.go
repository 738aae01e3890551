package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

// ExportMatchesStore defines the database operations needed to export
// the stored match set
type ExportMatchesStore interface {
	db.StudentStore
	db.SoldierStore
	db.MatchStore
}

// ExportMatches writes the stored match set as CSV, joined with
// student and soldier names so the output is readable by coordinators
// without database access.
func ExportMatches(ctx context.Context, database ExportMatchesStore, logger *zap.Logger, dst io.Writer) error {
	logger.Debug("Exporting matches to CSV")

	matches, err := database.GetMatches(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch matches: %w", err)
	}
	students, err := database.GetStudents(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch students: %w", err)
	}
	soldiers, err := database.GetSoldiers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch soldiers: %w", err)
	}

	studentNames := make(map[string]string, len(students))
	for _, s := range students {
		studentNames[s.ID] = s.FirstName + " " + s.LastName
	}
	soldierNames := make(map[string]string, len(soldiers))
	for _, s := range soldiers {
		soldierNames[s.ID] = s.FirstName + " " + s.LastName
	}

	writer := csv.NewWriter(dst)
	header := []string{
		"match_id", "student", "soldier", "score", "rank", "status",
		"gender_match", "language_match", "region_match", "distance_score",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range matches {
		row := []string{
			m.ID,
			studentNames[m.StudentID],
			soldierNames[m.SoldierID],
			strconv.Itoa(m.Score),
			strconv.Itoa(m.Rank),
			m.Status,
			strconv.FormatBool(m.GenderMatch),
			strconv.FormatBool(m.LanguageMatch),
			strconv.FormatBool(m.RegionMatch),
			strconv.Itoa(m.DistanceScore),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	logger.Info("Exported matches", zap.Int("count", len(matches)))
	return nil
}
