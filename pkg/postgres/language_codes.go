package postgres

import (
	"context"
	"fmt"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

// GetLanguageCodes retrieves all persisted minted language codes
func (d *DB) GetLanguageCodes(ctx context.Context) ([]db.LanguageCode, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT text, code FROM language_code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query language codes: %w", err)
	}
	defer rows.Close()

	var codes []db.LanguageCode
	for rows.Next() {
		var c db.LanguageCode
		if err := rows.Scan(&c.Text, &c.Code); err != nil {
			return nil, fmt.Errorf("failed to scan language code: %w", err)
		}
		codes = append(codes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating language codes: %w", err)
	}

	return codes, nil
}

// InsertLanguageCodes upserts minted language codes. Existing mappings
// are left untouched so codes stay stable once assigned.
func (d *DB) InsertLanguageCodes(ctx context.Context, codes []db.LanguageCode) error {
	if len(codes) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range codes {
		_, err := tx.Exec(ctx, `
			INSERT INTO language_code (text, code)
			VALUES ($1, $2)
			ON CONFLICT (text) DO NOTHING
		`, c.Text, c.Code)
		if err != nil {
			return fmt.Errorf("failed to insert language code %q: %w", c.Text, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
