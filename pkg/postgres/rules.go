package postgres

import (
	"context"
	"fmt"

	"github.com/camdenward/staffrota/pkg/db"
)

// InsertRule inserts a new rule record.
func (d *DB) InsertRule(ctx context.Context, record *db.RuleRecord) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO rules (id, type, subject_employee_id, original_text, days,
			window_start, window_end, qualifiers, priority, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, record.ID, record.Type, record.SubjectEmployeeID, record.OriginalText,
		record.Days, record.WindowStart, record.WindowEnd, record.Qualifiers,
		record.Priority, record.Active)
	if err != nil {
		return fmt.Errorf("failed to insert rule: %w", err)
	}
	return nil
}

// GetRules fetches every rule, optionally limited to active ones.
func (d *DB) GetRules(ctx context.Context, activeOnly bool) ([]db.RuleRecord, error) {
	query := `
		SELECT id, type, subject_employee_id, original_text, days,
			window_start, window_end, qualifiers, priority, active
		FROM rules`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at, id`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	var records []db.RuleRecord
	for rows.Next() {
		var record db.RuleRecord
		if err := rows.Scan(&record.ID, &record.Type, &record.SubjectEmployeeID,
			&record.OriginalText, &record.Days, &record.WindowStart,
			&record.WindowEnd, &record.Qualifiers, &record.Priority,
			&record.Active); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}
	return records, nil
}

// GetActiveRules fetches the active rule set.
func (d *DB) GetActiveRules(ctx context.Context) ([]db.RuleRecord, error) {
	return d.GetRules(ctx, true)
}

// SetRuleActive toggles a rule's active flag. Rules are otherwise
// immutable once created.
func (d *DB) SetRuleActive(ctx context.Context, id string, active bool) error {
	tag, err := d.pool.Exec(ctx, `UPDATE rules SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to toggle rule %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rule %s not found", id)
	}
	return nil
}
