package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/camdenward/staffrota/pkg/db"
)

// InsertSchedule inserts a new schedule record.
func (d *DB) InsertSchedule(ctx context.Context, record *db.ScheduleRecord) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO schedules (id, department, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
	`, record.ID, record.Department, record.StartDate, record.EndDate, record.Status)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

// GetSchedule fetches a schedule by id. Returns (nil, nil) when absent.
func (d *DB) GetSchedule(ctx context.Context, id string) (*db.ScheduleRecord, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, department, start_date::text, end_date::text, status
		FROM schedules WHERE id = $1
	`, id)

	var record db.ScheduleRecord
	err := row.Scan(&record.ID, &record.Department, &record.StartDate, &record.EndDate, &record.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule %s: %w", id, err)
	}
	return &record, nil
}

// FindSchedule fetches the schedule covering a department and date range.
// Returns (nil, nil) when absent.
func (d *DB) FindSchedule(ctx context.Context, department, startDate, endDate string) (*db.ScheduleRecord, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, department, start_date::text, end_date::text, status
		FROM schedules
		WHERE department = $1 AND start_date = $2 AND end_date = $3
	`, department, startDate, endDate)

	var record db.ScheduleRecord
	err := row.Scan(&record.ID, &record.Department, &record.StartDate, &record.EndDate, &record.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}
	return &record, nil
}

// UpdateScheduleStatus persists a workflow transition.
func (d *DB) UpdateScheduleStatus(ctx context.Context, id, status string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE schedules SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update schedule %s status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", id)
	}
	return nil
}
