package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/core/workflow"
)

// TransitionSchedule moves a schedule to a target lifecycle state and
// persists the new status. Entering validated runs a fresh detection pass
// first; every other target consults only the lifecycle graph.
func TransitionSchedule(
	ctx context.Context,
	database ValidateScheduleStore,
	employees []model.Employee,
	shifts []model.Shift,
	logger *zap.Logger,
	scheduleID string,
	target model.ScheduleStatus,
) (model.Schedule, error) {
	logger.Debug("Starting transitionSchedule",
		zap.String("schedule_id", scheduleID),
		zap.String("target", string(target)))

	if target == model.ScheduleValidated {
		result, err := ValidateSchedule(ctx, database, employees, shifts, logger, scheduleID)
		if err != nil {
			return model.Schedule{}, err
		}
		if !result.Valid {
			return model.Schedule{}, &workflow.InvalidTransitionError{
				ScheduleID: result.Schedule.ID,
				From:       result.Schedule.Status,
				To:         target,
				Reason:     fmt.Sprintf("%d unresolved conflicts", len(result.Conflicts)),
			}
		}
		return result.Schedule, nil
	}

	record, err := database.GetSchedule(ctx, scheduleID)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if record == nil {
		return model.Schedule{}, fmt.Errorf("schedule %s not found", scheduleID)
	}
	schedule := scheduleFromRecord(*record)

	schedule, err = workflow.Transition(schedule, target, nil)
	if err != nil {
		return model.Schedule{}, err
	}

	if err := database.UpdateScheduleStatus(ctx, schedule.ID, string(schedule.Status)); err != nil {
		return model.Schedule{}, fmt.Errorf("failed to update schedule status: %w", err)
	}
	logger.Info("Schedule transitioned",
		zap.String("id", schedule.ID),
		zap.String("status", string(schedule.Status)))
	return schedule, nil
}
