package postgres

import (
	"context"
	"fmt"

	"github.com/chayal-connect/matchmaker/pkg/db"
)

// GetStudents retrieves all student records
func (d *DB) GetStudents(ctx context.Context) ([]db.Student, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, gender, city, language, scholarship, assignment_count
		FROM student
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []db.Student
	for rows.Next() {
		var s db.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Gender, &s.City, &s.Language, &s.Scholarship, &s.AssignmentCount); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// InsertStudents inserts student records in a single transaction
func (d *DB) InsertStudents(ctx context.Context, students []db.Student) error {
	if len(students) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range students {
		_, err := tx.Exec(ctx, `
			INSERT INTO student (id, first_name, last_name, gender, city, language, scholarship, assignment_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, s.FirstName, s.LastName, s.Gender, s.City, s.Language, s.Scholarship, s.AssignmentCount)
		if err != nil {
			return fmt.Errorf("failed to insert student %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteStudent removes a student record. Matches referencing the
// student are removed by the FK cascade.
func (d *DB) DeleteStudent(ctx context.Context, studentID string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM student WHERE id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("student %s not found", studentID)
	}

	return nil
}
