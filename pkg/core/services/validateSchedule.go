package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/camdenward/staffrota/pkg/core/conflict"
	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/core/workflow"
	"github.com/camdenward/staffrota/pkg/db"
)

// ValidateScheduleResult contains the validation outcome. Valid is false
// when open conflicts blocked the transition; the schedule keeps its prior
// status in that case.
type ValidateScheduleResult struct {
	Schedule  model.Schedule
	Conflicts []model.Conflict
	Valid     bool
}

// ValidateScheduleStore defines the database operations needed for
// validating a schedule.
type ValidateScheduleStore interface {
	GetSchedule(ctx context.Context, id string) (*db.ScheduleRecord, error)
	GetActiveRules(ctx context.Context) ([]db.RuleRecord, error)
	GetAssignments(ctx context.Context, scheduleID string) ([]db.AssignmentRecord, error)
	UpdateScheduleStatus(ctx context.Context, id, status string) error
}

// ValidateSchedule runs the conflict detector over a schedule's current
// assignment set and moves it to validated when the set is clean. Conflicts
// are returned either way; a conflicted schedule stays in its prior state.
func ValidateSchedule(
	ctx context.Context,
	database ValidateScheduleStore,
	employees []model.Employee,
	shifts []model.Shift,
	logger *zap.Logger,
	scheduleID string,
) (*ValidateScheduleResult, error) {
	logger.Debug("Starting validateSchedule", zap.String("schedule_id", scheduleID))

	record, err := database.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("schedule %s not found", scheduleID)
	}
	schedule := scheduleFromRecord(*record)

	ruleRecords, err := database.GetActiveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rules: %w", err)
	}
	assignmentRecords, err := database.GetAssignments(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	assignments := assignmentsFromRecords(assignmentRecords)
	logger.Debug("Found assignments", zap.Int("count", len(assignments)))

	roster := model.Roster{
		Employees: employees,
		Shifts:    shifts,
		Rules:     rulesFromRecords(ruleRecords),
	}
	conflicts := conflict.Detect(assignments, roster)
	logger.Info("Detection completed", zap.Int("conflicts", len(conflicts)))
	for _, c := range conflicts {
		logger.Warn("Conflict",
			zap.String("kind", string(c.Kind)),
			zap.String("employee_id", c.EmployeeID),
			zap.String("detail", c.Detail))
	}

	validated, err := workflow.Transition(schedule, model.ScheduleValidated, conflicts)
	if err != nil {
		var transitionErr *workflow.InvalidTransitionError
		if errors.As(err, &transitionErr) && conflict.HasHard(conflicts) && workflow.CanTransition(schedule.Status, model.ScheduleValidated) {
			// Open conflicts are an expected outcome of validation, not a
			// caller mistake. The schedule keeps its state.
			logger.Warn("Schedule not validated - open conflicts remain",
				zap.String("id", schedule.ID),
				zap.Int("conflicts", len(conflicts)))
			return &ValidateScheduleResult{Schedule: schedule, Conflicts: conflicts}, nil
		}
		return nil, err
	}

	if err := database.UpdateScheduleStatus(ctx, validated.ID, string(validated.Status)); err != nil {
		return nil, fmt.Errorf("failed to update schedule status: %w", err)
	}
	logger.Info("Schedule validated", zap.String("id", validated.ID))
	return &ValidateScheduleResult{Schedule: validated, Conflicts: conflicts, Valid: true}, nil
}
