package postgres

import (
	"context"
	"fmt"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

// GetMatches retrieves all match records
func (d *DB) GetMatches(ctx context.Context) ([]db.Match, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, student_id, soldier_id, score, rank, status,
		       gender_match, language_match, region_match, distance_score, created_at
		FROM match
		ORDER BY soldier_id, rank
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []db.Match
	for rows.Next() {
		var m db.Match
		if err := rows.Scan(&m.ID, &m.StudentID, &m.SoldierID, &m.Score, &m.Rank, &m.Status,
			&m.GenderMatch, &m.LanguageMatch, &m.RegionMatch, &m.DistanceScore, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}

	return matches, nil
}

// ReplaceMatches atomically replaces the entire match set with a new one.
// A matching run produces a complete replacement, never a merge with the
// previous state.
func (d *DB) ReplaceMatches(ctx context.Context, matches []db.Match) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM match`); err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}

	for _, m := range matches {
		_, err := tx.Exec(ctx, `
			INSERT INTO match (id, student_id, soldier_id, score, rank, status,
			                   gender_match, language_match, region_match, distance_score, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, m.ID, m.StudentID, m.SoldierID, m.Score, m.Rank, m.Status,
			m.GenderMatch, m.LanguageMatch, m.RegionMatch, m.DistanceScore, m.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateMatchStatus updates the review status of a single match
func (d *DB) UpdateMatchStatus(ctx context.Context, matchID, status string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE match SET status = $2 WHERE id = $1
	`, matchID, status)
	if err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s not found", matchID)
	}

	return nil
}
