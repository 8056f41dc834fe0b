package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/camdenward/staffrota/internal/config"
	"github.com/camdenward/staffrota/pkg/core/engine"
	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/core/workflow"
	"github.com/camdenward/staffrota/pkg/db"
)

// GenerateScheduleResult contains the generation outcome.
type GenerateScheduleResult struct {
	Schedule model.Schedule
	Result   model.GenerationResult
}

// GenerateScheduleStore defines the database operations needed for
// generating a schedule.
type GenerateScheduleStore interface {
	FindSchedule(ctx context.Context, department, startDate, endDate string) (*db.ScheduleRecord, error)
	InsertSchedule(ctx context.Context, record *db.ScheduleRecord) error
	UpdateScheduleStatus(ctx context.Context, id, status string) error
	GetActiveRules(ctx context.Context) ([]db.RuleRecord, error)
	GetAssignments(ctx context.Context, scheduleID string) ([]db.AssignmentRecord, error)
	ReplaceAssignments(ctx context.Context, scheduleID string, records []db.AssignmentRecord) error
}

// GenerateSchedule runs the assignment engine over a department's shifts for
// a date range. A schedule row is created on first generation; regeneration
// replaces the prior assignment set. If dryRun is true nothing is saved.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	employees []model.Employee,
	shifts []model.Shift,
	cfg *config.Config,
	logger *zap.Logger,
	department, startDate, endDate string,
	dryRun bool,
) (*GenerateScheduleResult, error) {
	logger.Debug("Starting generateSchedule",
		zap.String("department", department),
		zap.String("start", startDate),
		zap.String("end", endDate),
		zap.Bool("dry_run", dryRun))

	start, err := model.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := model.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("date range %s..%s is reversed", startDate, endDate)
	}

	schedule, created, err := findOrCreateSchedule(ctx, database, department, startDate, endDate, dryRun)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved schedule",
		zap.String("id", schedule.ID),
		zap.String("status", string(schedule.Status)),
		zap.Bool("created", created))

	// The workflow graph is checked up front so an ineligible schedule
	// fails before any engine work.
	if !workflow.CanTransition(schedule.Status, model.ScheduleGenerated) {
		return nil, &workflow.InvalidTransitionError{
			ScheduleID: schedule.ID,
			From:       schedule.Status,
			To:         model.ScheduleGenerated,
		}
	}

	logger.Debug("Fetching active rules")
	ruleRecords, err := database.GetActiveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rules: %w", err)
	}
	rules := rulesFromRecords(ruleRecords)
	logger.Debug("Found active rules", zap.Int("count", len(rules)))

	var prior []model.Assignment
	if !created {
		assignmentRecords, err := database.GetAssignments(ctx, schedule.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch prior assignments: %w", err)
		}
		prior = assignmentsFromRecords(assignmentRecords)
		logger.Debug("Found prior assignments", zap.Int("count", len(prior)))
	}

	departmentShifts := filterShiftsByDepartment(shifts, department)

	logger.Info("Running assignment engine",
		zap.Int("employees", len(employees)),
		zap.Int("shifts", len(departmentShifts)),
		zap.Int("rules", len(rules)))
	result, err := engine.Generate(engine.Request{
		StartDate:                startDate,
		EndDate:                  endDate,
		Employees:                employees,
		Shifts:                   departmentShifts,
		Rules:                    rules,
		PriorAssignments:         prior,
		CoverageWarningThreshold: cfg.CoverageWarningThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("Generation completed",
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("unmet_shifts", len(result.UnmetShifts)),
		zap.Int("conflicts", len(result.Conflicts)),
		zap.Float64("coverage", result.CoveragePercentage))
	for _, warning := range result.Warnings {
		logger.Warn("Coverage warning", zap.String("warning", warning))
	}

	schedule, err = workflow.Transition(schedule, model.ScheduleGenerated, nil)
	if err != nil {
		return nil, err
	}

	if dryRun {
		logger.Info("Dry run mode - assignments not saved")
		return &GenerateScheduleResult{Schedule: schedule, Result: result}, nil
	}

	if err := database.ReplaceAssignments(ctx, schedule.ID, assignmentsToRecords(schedule.ID, result.Assignments)); err != nil {
		return nil, fmt.Errorf("failed to save assignments: %w", err)
	}
	if err := database.UpdateScheduleStatus(ctx, schedule.ID, string(schedule.Status)); err != nil {
		return nil, fmt.Errorf("failed to update schedule status: %w", err)
	}
	logger.Info("Schedule generated",
		zap.String("id", schedule.ID),
		zap.Int("assignments", len(result.Assignments)))

	return &GenerateScheduleResult{Schedule: schedule, Result: result}, nil
}

// findOrCreateSchedule resolves the schedule row for a department and date
// range, inserting a draft when none exists. Dry runs never insert; the
// draft lives only in memory.
func findOrCreateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	department, startDate, endDate string,
	dryRun bool,
) (model.Schedule, bool, error) {
	record, err := database.FindSchedule(ctx, department, startDate, endDate)
	if err != nil {
		return model.Schedule{}, false, fmt.Errorf("failed to find schedule: %w", err)
	}
	if record != nil {
		return scheduleFromRecord(*record), false, nil
	}

	schedule := model.Schedule{
		ID:         uuid.NewString(),
		Department: department,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     model.ScheduleDraft,
	}
	if !dryRun {
		err := database.InsertSchedule(ctx, &db.ScheduleRecord{
			ID:         schedule.ID,
			Department: schedule.Department,
			StartDate:  schedule.StartDate,
			EndDate:    schedule.EndDate,
			Status:     string(schedule.Status),
		})
		if err != nil {
			return model.Schedule{}, false, fmt.Errorf("failed to create schedule: %w", err)
		}
	}
	return schedule, true, nil
}

func filterShiftsByDepartment(shifts []model.Shift, department string) []model.Shift {
	filtered := make([]model.Shift, 0, len(shifts))
	for _, shift := range shifts {
		if shift.Department == department {
			filtered = append(filtered, shift)
		}
	}
	return filtered
}
