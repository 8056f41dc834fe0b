package interpreter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camdenward/staffrota/pkg/core/model"
)

func testEmployees() []model.Employee {
	return []model.Employee{
		{ID: "emp-sarah", Name: "Sarah Khan"},
		{ID: "emp-james", Name: "James Obi"},
		{ID: "emp-priya", Name: "Priya Patel"},
	}
}

func TestInterpret_UnavailabilityStatement(t *testing.T) {
	it := New(testEmployees())

	rule, err := it.Interpret("Sarah can't work past 5pm on weekdays")
	require.NoError(t, err)

	assert.Equal(t, model.RuleAvailability, rule.Type)
	assert.Equal(t, "emp-sarah", rule.SubjectEmployeeID)
	assert.Equal(t, 1, rule.Priority)
	assert.True(t, rule.Active)
	assert.True(t, rule.Excludes())
	assert.Equal(t, "Sarah can't work past 5pm on weekdays", rule.OriginalText)

	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	}, rule.Constraints.Days)

	require.NotNil(t, rule.Constraints.Window)
	assert.Equal(t, model.ClockTime(17*60), rule.Constraints.Window.Start)
	assert.Equal(t, model.EndOfDay, rule.Constraints.Window.End)
}

func TestInterpret_RestrictionWithHourCap(t *testing.T) {
	it := New(testEmployees())

	rule, err := it.Interpret("James can work no more than 20 hours per week")
	require.NoError(t, err)

	assert.Equal(t, model.RuleRestriction, rule.Type)
	assert.Equal(t, "emp-james", rule.SubjectEmployeeID)
	assert.Equal(t, 1, rule.Priority)

	hours, ok := rule.MaxHours()
	require.True(t, ok)
	assert.InDelta(t, 20.0, hours, 0.001)
}

func TestInterpret_Preference(t *testing.T) {
	it := New(testEmployees())

	rule, err := it.Interpret("Priya prefers morning shifts")
	require.NoError(t, err)

	assert.Equal(t, model.RulePreference, rule.Type)
	assert.Equal(t, "emp-priya", rule.SubjectEmployeeID)
	assert.Equal(t, 3, rule.Priority)
	assert.False(t, rule.Excludes())

	require.NotNil(t, rule.Constraints.Window)
	assert.Equal(t, model.ClockTime(6*60), rule.Constraints.Window.Start)
	assert.Equal(t, model.ClockTime(12*60), rule.Constraints.Window.End)
}

func TestInterpret_FirstNamedPeriodWins(t *testing.T) {
	it := New(testEmployees())

	// Two named periods in one sentence: the earlier mention decides the
	// window, and repeated runs must agree.
	for i := 0; i < 100; i++ {
		rule, err := it.Interpret("Sarah prefers mornings and evenings")
		require.NoError(t, err)
		require.NotNil(t, rule.Constraints.Window)
		assert.Equal(t, model.ClockTime(6*60), rule.Constraints.Window.Start)
		assert.Equal(t, model.ClockTime(12*60), rule.Constraints.Window.End)
	}

	rule, err := it.Interpret("James prefers evenings over mornings")
	require.NoError(t, err)
	require.NotNil(t, rule.Constraints.Window)
	assert.Equal(t, model.ClockTime(17*60), rule.Constraints.Window.Start)
	assert.Equal(t, model.ClockTime(22*60), rule.Constraints.Window.End)
}

func TestInterpret_HedgedPreferenceLowersPriority(t *testing.T) {
	it := New(testEmployees())

	rule, err := it.Interpret("Priya would prefer not to work Sundays if at all possible")
	require.NoError(t, err)

	assert.Equal(t, model.RulePreference, rule.Type)
	assert.Equal(t, 5, rule.Priority)
	assert.Equal(t, []time.Weekday{time.Sunday}, rule.Constraints.Days)
}

func TestInterpret_Requirement(t *testing.T) {
	it := New(testEmployees())

	rule, err := it.Interpret("James must work Saturdays from 9am to 5pm")
	require.NoError(t, err)

	assert.Equal(t, model.RuleRequirement, rule.Type)
	assert.Equal(t, "emp-james", rule.SubjectEmployeeID)
	assert.Equal(t, []time.Weekday{time.Saturday}, rule.Constraints.Days)

	require.NotNil(t, rule.Constraints.Window)
	assert.Equal(t, model.ClockTime(9*60), rule.Constraints.Window.Start)
	assert.Equal(t, model.ClockTime(17*60), rule.Constraints.Window.End)
}

func TestInterpret_ProhibitionOutranksPreference(t *testing.T) {
	it := New(testEmployees())

	// Contains both "would like" and "can't"; the prohibition wins.
	rule, err := it.Interpret("Sarah would like us to know she can't work weekends")
	require.NoError(t, err)

	assert.Equal(t, model.RuleAvailability, rule.Type)
	assert.True(t, rule.Excludes())
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, rule.Constraints.Days)
}

func TestInterpret_TwentyFourHourClock(t *testing.T) {
	it := New(testEmployees())

	rule, err := it.Interpret("Sarah is unavailable between 17:00 and 21:30 on Tuesdays")
	require.NoError(t, err)

	require.NotNil(t, rule.Constraints.Window)
	assert.Equal(t, model.ClockTime(17*60), rule.Constraints.Window.Start)
	assert.Equal(t, model.ClockTime(21*60+30), rule.Constraints.Window.End)
}

func TestInterpret_UnknownSubjectLeavesRuleGlobal(t *testing.T) {
	it := New(testEmployees())

	rule, err := it.Interpret("Staff are not available on Sundays")
	require.NoError(t, err)

	assert.Equal(t, model.RuleAvailability, rule.Type)
	assert.Empty(t, rule.SubjectEmployeeID)
	assert.Equal(t, []time.Weekday{time.Sunday}, rule.Constraints.Days)
}

func TestInterpret_Uninterpretable(t *testing.T) {
	it := New(testEmployees())

	_, err := it.Interpret("the weather has been lovely lately")
	require.Error(t, err)

	var uninterpretable *UninterpretableRuleError
	require.ErrorAs(t, err, &uninterpretable)
	assert.Equal(t, "the weather has been lovely lately", uninterpretable.Text)

	_, err = it.Interpret("   ")
	assert.True(t, errors.As(err, &uninterpretable))
}

func TestInterpret_FullNameWinsOverFirstName(t *testing.T) {
	employees := []model.Employee{
		{ID: "emp-sarah-k", Name: "Sarah Khan"},
		{ID: "emp-sarah-l", Name: "Sarah Lee"},
	}
	it := New(employees)

	rule, err := it.Interpret("Sarah Lee cannot work Mondays")
	require.NoError(t, err)
	assert.Equal(t, "emp-sarah-l", rule.SubjectEmployeeID)
}
