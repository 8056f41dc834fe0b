package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camdenward/staffrota/internal/config"
	"github.com/camdenward/staffrota/pkg/core/model"
)

func weekdayPattern() config.ShiftPattern {
	return config.ShiftPattern{
		RRule:          "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
		Start:          "09:00",
		End:            "17:00",
		Department:     "kitchen",
		Headcount:      2,
		Qualifications: []string{"food_safety"},
	}
}

func TestExpandShifts_WeeklyPattern(t *testing.T) {
	// 2026-03-02 is a Monday; the week through Sunday yields five
	// weekday occurrences.
	shifts, err := ExpandShifts([]config.ShiftPattern{weekdayPattern()}, "2026-03-02", "2026-03-08")
	require.NoError(t, err)

	require.Len(t, shifts, 5)
	assert.Equal(t, "2026-03-02", shifts[0].Date)
	assert.Equal(t, "2026-03-06", shifts[4].Date)
	for _, shift := range shifts {
		assert.Equal(t, "kitchen", shift.Department)
		assert.Equal(t, 2, shift.Headcount)
		assert.Equal(t, model.TimeWindow{Start: 9 * 60, End: 17 * 60}, shift.Window)
		assert.Equal(t, []string{"food_safety"}, shift.RequiredQualifications)
	}
}

func TestExpandShifts_StableIDs(t *testing.T) {
	patterns := []config.ShiftPattern{weekdayPattern()}

	first, err := ExpandShifts(patterns, "2026-03-02", "2026-03-08")
	require.NoError(t, err)
	second, err := ExpandShifts(patterns, "2026-03-02", "2026-03-08")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "kitchen-2026-03-02-09:00", first[0].ID)
}

func TestExpandShifts_ReversedRange(t *testing.T) {
	_, err := ExpandShifts([]config.ShiftPattern{weekdayPattern()}, "2026-03-08", "2026-03-02")
	assert.Error(t, err)
}

func TestExpandShifts_BadPattern(t *testing.T) {
	bad := weekdayPattern()
	bad.RRule = "EVERY WEEKDAY"
	_, err := ExpandShifts([]config.ShiftPattern{bad}, "2026-03-02", "2026-03-08")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}
