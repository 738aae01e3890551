package services

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

// soldierRow is a validated CSV row before conversion to a record
type soldierRow struct {
	ID              string `validate:"required"`
	FirstName       string `validate:"required"`
	LastName        string
	Gender          string
	PreferredGender string
	City            string
	Language        string
	SpecialRequest  bool
}

// ImportSoldiers reads soldier records from CSV and inserts them.
// Same contract as ImportStudents: header row required, column order
// free, a bad row fails the whole import with its row number.
func ImportSoldiers(ctx context.Context, database db.SoldierStore, logger *zap.Logger, src io.Reader) (*ImportResult, error) {
	logger.Debug("Importing soldiers from CSV")

	rows, err := readCSV(src)
	if err != nil {
		return nil, err
	}

	existing, err := database.GetSoldiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing soldiers: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.ID] = true
	}

	validate := validator.New()
	soldiers := make([]db.Soldier, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 2

		record := soldierRow{
			ID:              row.get("id"),
			FirstName:       row.get("first_name"),
			LastName:        row.get("last_name"),
			Gender:          row.get("gender"),
			PreferredGender: row.get("preferred_gender"),
			City:            row.get("city"),
			Language:        row.get("language"),
			SpecialRequest:  parseCSVBool(row.get("special_request")),
		}

		if err := validate.Struct(record); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("row %d: duplicate soldier ID %q", rowNum, record.ID)
		}
		seen[record.ID] = true

		soldiers = append(soldiers, db.Soldier{
			ID:                record.ID,
			FirstName:         record.FirstName,
			LastName:          record.LastName,
			Gender:            record.Gender,
			PreferredGender:   record.PreferredGender,
			City:              record.City,
			Language:          record.Language,
			HasSpecialRequest: record.SpecialRequest,
		})
	}

	if len(soldiers) == 0 {
		logger.Info("No soldier rows to import")
		return &ImportResult{}, nil
	}

	if err := database.InsertSoldiers(ctx, soldiers); err != nil {
		return nil, fmt.Errorf("failed to insert soldiers: %w", err)
	}

	logger.Info("Imported soldiers", zap.Int("count", len(soldiers)))
	return &ImportResult{Imported: len(soldiers)}, nil
}
