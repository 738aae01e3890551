package postgres

import (
	"context"
	"fmt"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

// GetSoldiers retrieves all soldier records
func (d *DB) GetSoldiers(ctx context.Context) ([]db.Soldier, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, gender, city, language, preferred_gender, has_special_request
		FROM soldier
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query soldiers: %w", err)
	}
	defer rows.Close()

	var soldiers []db.Soldier
	for rows.Next() {
		var s db.Soldier
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Gender, &s.City, &s.Language, &s.PreferredGender, &s.HasSpecialRequest); err != nil {
			return nil, fmt.Errorf("failed to scan soldier: %w", err)
		}
		soldiers = append(soldiers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating soldiers: %w", err)
	}

	return soldiers, nil
}

// InsertSoldiers inserts soldier records in a single transaction
func (d *DB) InsertSoldiers(ctx context.Context, soldiers []db.Soldier) error {
	if len(soldiers) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range soldiers {
		_, err := tx.Exec(ctx, `
			INSERT INTO soldier (id, first_name, last_name, gender, city, language, preferred_gender, has_special_request)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, s.FirstName, s.LastName, s.Gender, s.City, s.Language, s.PreferredGender, s.HasSpecialRequest)
		if err != nil {
			return fmt.Errorf("failed to insert soldier %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteSoldier removes a soldier record. Matches referencing the
// soldier are removed by the FK cascade.
func (d *DB) DeleteSoldier(ctx context.Context, soldierID string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM soldier WHERE id = $1`, soldierID)
	if err != nil {
		return fmt.Errorf("failed to delete soldier: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("soldier %s not found", soldierID)
	}

	return nil
}
