// Package workflow governs a schedule's lifecycle from draft through
// publication. It owns only the transition rules; storage of the schedule
// belongs to the caller.
package workflow

import (
	"fmt"

	"github.com/camdenward/staffrota/pkg/core/conflict"
	"github.com/camdenward/staffrota/pkg/core/model"
)

// InvalidTransitionError reports a workflow misuse. The schedule's stored
// state is untouched; the error names both states so the caller can render
// an actionable message.
type InvalidTransitionError struct {
	ScheduleID string
	From       model.ScheduleStatus
	To         model.ScheduleStatus
	Reason     string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("schedule %s: cannot transition from %s to %s", e.ScheduleID, e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// transitions is the full lifecycle graph. Generated may be re-entered
// repeatedly (regeneration), but nothing leaves published except archival:
// a published schedule's assignments change only through the external
// amendment path.
var transitions = map[model.ScheduleStatus][]model.ScheduleStatus{
	model.ScheduleDraft:     {model.ScheduleGenerated},
	model.ScheduleGenerated: {model.ScheduleGenerated, model.ScheduleValidated},
	model.ScheduleValidated: {model.ScheduleApproved, model.ScheduleRejected, model.ScheduleGenerated},
	model.ScheduleApproved:  {model.SchedulePublished, model.ScheduleRejected},
	model.ScheduleRejected:  {model.ScheduleGenerated},
	model.SchedulePublished: {model.ScheduleArchived},
	model.ScheduleArchived:  {},
}

// CanTransition reports whether the lifecycle graph permits the move.
func CanTransition(from, to model.ScheduleStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves a schedule to the target state. Entering validated
// requires the open conflicts from a fresh detector run over the current
// assignment set: any hard conflict blocks the move. The workflow never
// clamps to the nearest valid state; an invalid request fails outright.
func Transition(schedule model.Schedule, target model.ScheduleStatus, openConflicts []model.Conflict) (model.Schedule, error) {
	if !target.IsValid() {
		return schedule, &InvalidTransitionError{
			ScheduleID: schedule.ID,
			From:       schedule.Status,
			To:         target,
			Reason:     "unknown target state",
		}
	}
	if !CanTransition(schedule.Status, target) {
		return schedule, &InvalidTransitionError{
			ScheduleID: schedule.ID,
			From:       schedule.Status,
			To:         target,
		}
	}
	if target == model.ScheduleValidated && conflict.HasHard(openConflicts) {
		return schedule, &InvalidTransitionError{
			ScheduleID: schedule.ID,
			From:       schedule.Status,
			To:         target,
			Reason:     fmt.Sprintf("%d unresolved conflicts", len(openConflicts)),
		}
	}

	schedule.Status = target
	return schedule, nil
}
