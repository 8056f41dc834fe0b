package roster

import (
	"fmt"

	"github.com/teambition/rrule-go"

	"github.com/camdenward/staffrota/internal/config"
	"github.com/camdenward/staffrota/pkg/core/model"
)

// ExpandShifts materialises shift patterns into concrete shifts over a
// date range (inclusive). Shift ids are derived from department, date, and
// window so repeated expansion of the same patterns is stable.
func ExpandShifts(patterns []config.ShiftPattern, startDate, endDate string) ([]model.Shift, error) {
	start, err := model.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := model.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("date range %s..%s is reversed", startDate, endDate)
	}

	var shifts []model.Shift
	for i, pattern := range patterns {
		rule, err := rrule.StrToRRule(pattern.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in shiftPatterns[%d]: %w", i, err)
		}
		windowStart, err := model.ParseClock(pattern.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid start in shiftPatterns[%d]: %w", i, err)
		}
		windowEnd, err := model.ParseClock(pattern.End)
		if err != nil {
			return nil, fmt.Errorf("invalid end in shiftPatterns[%d]: %w", i, err)
		}

		rule.DTStart(start)
		// Between is inclusive on both ends here; occurrences carry the
		// pattern's clock so truncate to dates.
		for _, occurrence := range rule.Between(start, end.AddDate(0, 0, 1), true) {
			date := occurrence.Format(model.DateLayout)
			if date > endDate {
				continue
			}
			shifts = append(shifts, model.Shift{
				ID:                     shiftID(pattern.Department, date, windowStart),
				Date:                   date,
				Window:                 model.TimeWindow{Start: windowStart, End: windowEnd},
				RequiredQualifications: pattern.Qualifications,
				Headcount:              pattern.Headcount,
				Department:             pattern.Department,
			})
		}
	}
	return shifts, nil
}

func shiftID(department, date string, start model.ClockTime) string {
	return fmt.Sprintf("%s-%s-%s", department, date, start)
}
