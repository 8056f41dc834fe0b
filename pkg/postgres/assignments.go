package postgres

import (
	"context"
	"fmt"

	"github.com/camdenward/staffrota/pkg/db"
)

// GetAssignments fetches the assignment set for a schedule.
func (d *DB) GetAssignments(ctx context.Context, scheduleID string) ([]db.AssignmentRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, schedule_id, employee_id, shift_id, date::text, status, priority, notes
		FROM assignments
		WHERE schedule_id = $1
		ORDER BY date, shift_id, employee_id
	`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var records []db.AssignmentRecord
	for rows.Next() {
		var record db.AssignmentRecord
		if err := rows.Scan(&record.ID, &record.ScheduleID, &record.EmployeeID,
			&record.ShiftID, &record.Date, &record.Status, &record.Priority,
			&record.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignments: %w", err)
	}
	return records, nil
}

// ReplaceAssignments swaps a schedule's assignment set in one transaction.
// Regeneration overwrites the prior generated set atomically.
func (d *DB) ReplaceAssignments(ctx context.Context, scheduleID string, records []db.AssignmentRecord) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM assignments WHERE schedule_id = $1`, scheduleID); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}

	for _, record := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignments (id, schedule_id, employee_id, shift_id, date, status, priority, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, record.ID, scheduleID, record.EmployeeID, record.ShiftID,
			record.Date, record.Status, record.Priority, record.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert assignment %s: %w", record.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit assignments: %w", err)
	}
	return nil
}
