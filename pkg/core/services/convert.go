package services

import (
	"time"

	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/db"
)

// ruleToRecord converts a core rule to its persisted shape.
func ruleToRecord(rule model.Rule) db.RuleRecord {
	record := db.RuleRecord{
		ID:                rule.ID,
		Type:              string(rule.Type),
		SubjectEmployeeID: rule.SubjectEmployeeID,
		OriginalText:      rule.OriginalText,
		Qualifiers:        rule.Constraints.Qualifiers,
		Priority:          int32(rule.Priority),
		Active:            rule.Active,
	}
	for _, day := range rule.Constraints.Days {
		record.Days = append(record.Days, int32(day))
	}
	if window := rule.Constraints.Window; window != nil {
		start := int32(window.Start)
		end := int32(window.End)
		record.WindowStart = &start
		record.WindowEnd = &end
	}
	return record
}

func ruleFromRecord(record db.RuleRecord) model.Rule {
	rule := model.Rule{
		ID:                record.ID,
		Type:              model.RuleType(record.Type),
		SubjectEmployeeID: record.SubjectEmployeeID,
		OriginalText:      record.OriginalText,
		Priority:          int(record.Priority),
		Active:            record.Active,
	}
	rule.Constraints.Qualifiers = record.Qualifiers
	for _, day := range record.Days {
		rule.Constraints.Days = append(rule.Constraints.Days, time.Weekday(day))
	}
	if record.WindowStart != nil && record.WindowEnd != nil {
		rule.Constraints.Window = &model.TimeWindow{
			Start: model.ClockTime(*record.WindowStart),
			End:   model.ClockTime(*record.WindowEnd),
		}
	}
	return rule
}

func rulesFromRecords(records []db.RuleRecord) []model.Rule {
	rules := make([]model.Rule, len(records))
	for i, record := range records {
		rules[i] = ruleFromRecord(record)
	}
	return rules
}

func assignmentToRecord(scheduleID string, a model.Assignment) db.AssignmentRecord {
	return db.AssignmentRecord{
		ID:         a.ID,
		ScheduleID: scheduleID,
		EmployeeID: a.EmployeeID,
		ShiftID:    a.ShiftID,
		Date:       a.Date,
		Status:     string(a.Status),
		Priority:   int32(a.Priority),
		Notes:      a.Notes,
	}
}

func assignmentFromRecord(record db.AssignmentRecord) model.Assignment {
	return model.Assignment{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		ShiftID:    record.ShiftID,
		Date:       record.Date,
		Status:     model.AssignmentStatus(record.Status),
		Priority:   int(record.Priority),
		Notes:      record.Notes,
	}
}

func assignmentsFromRecords(records []db.AssignmentRecord) []model.Assignment {
	assignments := make([]model.Assignment, len(records))
	for i, record := range records {
		assignments[i] = assignmentFromRecord(record)
	}
	return assignments
}

func assignmentsToRecords(scheduleID string, assignments []model.Assignment) []db.AssignmentRecord {
	records := make([]db.AssignmentRecord, len(assignments))
	for i, a := range assignments {
		records[i] = assignmentToRecord(scheduleID, a)
	}
	return records
}

func scheduleFromRecord(record db.ScheduleRecord) model.Schedule {
	return model.Schedule{
		ID:         record.ID,
		Department: record.Department,
		StartDate:  record.StartDate,
		EndDate:    record.EndDate,
		Status:     model.ScheduleStatus(record.Status),
	}
}
