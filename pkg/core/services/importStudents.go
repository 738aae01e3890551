package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

// ImportResult reports how many records an import wrote
type ImportResult struct {
	Imported int
}

// studentRow is a validated CSV row before conversion to a record
type studentRow struct {
	ID              string `validate:"required"`
	FirstName       string `validate:"required"`
	LastName        string
	Gender          string
	City            string
	Language        string
	Scholarship     bool
	AssignmentCount int `validate:"gte=0"`
}

// ImportStudents reads student records from CSV and inserts them.
// The first row must be a header; column order is free. Rows are
// validated before anything is written, so a bad row fails the whole
// import with its row number.
func ImportStudents(ctx context.Context, database db.StudentStore, logger *zap.Logger, src io.Reader) (*ImportResult, error) {
	logger.Debug("Importing students from CSV")

	rows, err := readCSV(src)
	if err != nil {
		return nil, err
	}

	existing, err := database.GetStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing students: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.ID] = true
	}

	validate := validator.New()
	students := make([]db.Student, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header

		record := studentRow{
			ID:        row.get("id"),
			FirstName: row.get("first_name"),
			LastName:  row.get("last_name"),
			Gender:    row.get("gender"),
			City:      row.get("city"),
			Language:  row.get("language"),
		}
		record.Scholarship = parseCSVBool(row.get("scholarship"))
		if raw := row.get("assignment_count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid assignment_count %q", rowNum, raw)
			}
			record.AssignmentCount = n
		}

		if err := validate.Struct(record); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("row %d: duplicate student ID %q", rowNum, record.ID)
		}
		seen[record.ID] = true

		students = append(students, db.Student{
			ID:              record.ID,
			FirstName:       record.FirstName,
			LastName:        record.LastName,
			Gender:          record.Gender,
			City:            record.City,
			Language:        record.Language,
			Scholarship:     record.Scholarship,
			AssignmentCount: record.AssignmentCount,
		})
	}

	if len(students) == 0 {
		logger.Info("No student rows to import")
		return &ImportResult{}, nil
	}

	if err := database.InsertStudents(ctx, students); err != nil {
		return nil, fmt.Errorf("failed to insert students: %w", err)
	}

	logger.Info("Imported students", zap.Int("count", len(students)))
	return &ImportResult{Imported: len(students)}, nil
}

// csvRow maps lower-cased header names to cell values
type csvRow map[string]string

func (r csvRow) get(column string) string {
	return strings.TrimSpace(r[column])
}

// readCSV reads a header row plus data rows into header-keyed maps
func readCSV(src io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		row := make(csvRow, len(header))
		for i, cell := range record {
			if i < len(header) {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseCSVBool accepts the truthy spellings that show up in exported
// spreadsheets, including Hebrew yes
func parseCSVBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "כן":
		return true
	default:
		return false
	}
}
