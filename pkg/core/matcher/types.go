package matcher

import "github.com/chayal-connect/matchmaker/pkg/core/model"

// Match ranks
const (
	// RankPrimary is the main suggested match; it counts against the
	// student's live assignment load during a run.
	RankPrimary = 1

	// RankAlternate is the backup suggestion; it does not count against
	// the student's load, so the same student can back up several
	// soldiers without starving anyone.
	RankAlternate = 2
)

// DistanceScorer resolves two city names to a 0-100 proximity score and
// a city to a coarse region bucket. Implemented by geo.Resolver.
type DistanceScorer interface {
	// DistanceScore returns the step-function proximity score for two
	// cities, or a neutral value when either can't be resolved
	DistanceScore(cityA, cityB string) int

	// Region returns the coarse region bucket, or "" when unresolved
	Region(city string) string
}

// LanguageResolver resolves free-text language names to codes and
// decides whether two codes count as a language match. Implemented by
// lang.Registry.
type LanguageResolver interface {
	// Resolve maps free text to a code; "" means no language on record
	Resolve(freeText string) string

	// Match reports whether two codes count as a language match
	// (equality or same family); missing codes never match
	Match(codeA, codeB string) bool
}

// Criteria records which signals contributed to a pair's score.
// Exposed alongside each match so reviewers can see why a pairing was
// suggested.
type Criteria struct {
	GenderMatch   bool
	LanguageMatch bool
	RegionMatch   bool
	DistanceScore int
}

// Candidate is an ephemeral scored (student, soldier) pairing produced
// during a run. Candidates are recomputed per run and never persisted.
type Candidate struct {
	Student  model.Student
	Soldier  model.Soldier
	Score    int
	Criteria Criteria
}

// Match is a committed ranked assignment of a student to a soldier.
// The engine always emits StatusSuggested; approval and rejection happen
// in the review layer and are never touched by a matching run, which
// replaces the whole set instead.
type Match struct {
	StudentID string
	SoldierID string
	Score     int
	Rank      int
	Criteria  Criteria
	Status    model.MatchStatus
}

// Summary aggregates coverage and quality statistics over a final match
// set. Anomalies like unmatched soldiers or unused students are expected,
// reportable outcomes here, not errors.
type Summary struct {
	TotalSoldiers int
	TotalStudents int
	TotalMatches  int

	SoldiersWithTwoMatches int
	SoldiersWithOneMatch   int
	SoldiersWithNoMatch    int

	StudentsUsed    int
	StudentsNotUsed int

	AverageScore float64

	// Score bands: high >= 70, medium 30-69, low < 30
	HighScoreMatches   int
	MediumScoreMatches int
	LowScoreMatches    int
}

// Result is the outcome of one matching run
type Result struct {
	Matches []Match
	Summary Summary
}
