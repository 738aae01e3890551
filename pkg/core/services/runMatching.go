package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/core/matcher"
	"github.com/chayal-connect/matchmaker/pkg/db"
	"github.com/chayal-connect/matchmaker/pkg/lang"
)

// RunMatchingStore defines the database operations required by a
// matching run
type RunMatchingStore interface {
	db.StudentStore
	db.SoldierStore
	db.MatchStore
	db.LanguageCodeStore
}

// MatchingResult represents the outcome of a matching run
type MatchingResult struct {
	Matches []db.Match
	Summary matcher.Summary
	DryRun  bool
}

// RunMatching loads all students and soldiers, runs the matching engine,
// and replaces the stored match set with the fresh results. Language
// codes minted during the run are persisted so the same language text
// keeps its code across runs. With dryRun set, nothing is written and
// the results are only returned for inspection.
func RunMatching(ctx context.Context, database RunMatchingStore, distance matcher.DistanceScorer, languages *lang.Registry, logger *zap.Logger, dryRun bool) (*MatchingResult, error) {
	logger.Debug("Starting matching run", zap.Bool("dry_run", dryRun))

	// Fetch all students
	logger.Debug("Fetching students")
	dbStudents, err := database.GetStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	logger.Debug("Found students", zap.Int("count", len(dbStudents)))

	// Fetch all soldiers
	logger.Debug("Fetching soldiers")
	dbSoldiers, err := database.GetSoldiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch soldiers: %w", err)
	}
	logger.Debug("Found soldiers", zap.Int("count", len(dbSoldiers)))

	// Seed the language registry with previously minted codes so that
	// unrecognized languages resolve to the same code they got before
	storedCodes, err := database.GetLanguageCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch language codes: %w", err)
	}
	seed := make(map[string]string, len(storedCodes))
	for _, c := range storedCodes {
		seed[c.Text] = c.Code
	}
	languages.Seed(seed)
	logger.Debug("Seeded language registry", zap.Int("stored_codes", len(storedCodes)))

	students := toModelStudents(dbStudents)
	soldiers := toModelSoldiers(dbSoldiers)

	// Run the engine
	engine := matcher.NewEngine(distance, languages)
	result, err := engine.Run(students, soldiers)
	if err != nil {
		return nil, fmt.Errorf("matching failed: %w", err)
	}

	logger.Info("Matching complete",
		zap.Int("matches", result.Summary.TotalMatches),
		zap.Int("soldiers_fully_matched", result.Summary.SoldiersWithTwoMatches),
		zap.Int("soldiers_unmatched", result.Summary.SoldiersWithNoMatch),
		zap.Int("students_not_used", result.Summary.StudentsNotUsed),
		zap.Float64("average_score", result.Summary.AverageScore))

	matches := toDBMatches(result.Matches, time.Now().UTC())

	if dryRun {
		logger.Info("Dry run, skipping database writes")
		return &MatchingResult{Matches: matches, Summary: result.Summary, DryRun: true}, nil
	}

	// Persist any newly minted language codes before the matches that
	// depend on them
	minted := languages.Minted()
	if len(minted) > 0 {
		codes := make([]db.LanguageCode, 0, len(minted))
		for text, code := range minted {
			if _, seeded := seed[text]; seeded {
				continue
			}
			codes = append(codes, db.LanguageCode{Text: text, Code: code})
		}
		if len(codes) > 0 {
			logger.Debug("Persisting minted language codes", zap.Int("count", len(codes)))
			if err := database.InsertLanguageCodes(ctx, codes); err != nil {
				return nil, fmt.Errorf("failed to insert language codes: %w", err)
			}
		}
	}

	// Replace the previous match set in full
	logger.Debug("Replacing stored matches", zap.Int("count", len(matches)))
	if err := database.ReplaceMatches(ctx, matches); err != nil {
		return nil, fmt.Errorf("failed to replace matches: %w", err)
	}

	logger.Info("Matching run persisted", zap.Int("matches", len(matches)))

	return &MatchingResult{Matches: matches, Summary: result.Summary, DryRun: false}, nil
}
