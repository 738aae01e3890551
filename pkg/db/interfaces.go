package db

import "context"

// StudentStore defines student record operations
type StudentStore interface {
	GetStudents(ctx context.Context) ([]Student, error)
	InsertStudents(ctx context.Context, students []Student) error
	DeleteStudent(ctx context.Context, studentID string) error
}

// SoldierStore defines soldier record operations
type SoldierStore interface {
	GetSoldiers(ctx context.Context) ([]Soldier, error)
	InsertSoldiers(ctx context.Context, soldiers []Soldier) error
	DeleteSoldier(ctx context.Context, soldierID string) error
}

// MatchStore defines match set operations. A matching run replaces the
// whole set; incremental edits are limited to review status changes.
type MatchStore interface {
	GetMatches(ctx context.Context) ([]Match, error)
	ReplaceMatches(ctx context.Context, matches []Match) error
	UpdateMatchStatus(ctx context.Context, matchID, status string) error
}

// LanguageCodeStore persists minted language codes across runs
type LanguageCodeStore interface {
	GetLanguageCodes(ctx context.Context) ([]LanguageCode, error)
	InsertLanguageCodes(ctx context.Context, codes []LanguageCode) error
}

// Database defines the interface for all database operations,
// implemented by postgres.DB.
type Database interface {
	StudentStore
	SoldierStore
	MatchStore
	LanguageCodeStore
}
