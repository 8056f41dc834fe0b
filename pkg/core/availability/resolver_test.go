package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// 2026-03-02 is a Monday.
const monday = "2026-03-02"

func mondayNineToFive() model.Employee {
	return model.Employee{
		ID:   "emp-1",
		Name: "Sarah Khan",
		WeeklyAvailability: map[time.Weekday]model.TimeWindow{
			time.Monday: {Start: 9 * 60, End: 17 * 60},
		},
	}
}

func TestResolve_BasePattern(t *testing.T) {
	employee := mondayNineToFive()

	d := Resolve(employee, monday, model.TimeWindow{Start: 10 * 60, End: 14 * 60}, nil)
	assert.True(t, d.Available)

	// Outside the base window
	d = Resolve(employee, monday, model.TimeWindow{Start: 8 * 60, End: 12 * 60}, nil)
	assert.False(t, d.Available)
	assert.Contains(t, d.Reason, "outside weekly availability")

	// Day with no pattern at all
	d = Resolve(employee, "2026-03-03", model.TimeWindow{Start: 10 * 60, End: 14 * 60}, nil)
	assert.False(t, d.Available)
	assert.Contains(t, d.Reason, "Tuesday")
}

func TestResolve_ExclusionRuleOverridesBase(t *testing.T) {
	employee := mondayNineToFive()
	rules := []model.Rule{{
		ID:                "rule-1",
		Type:              model.RuleAvailability,
		SubjectEmployeeID: "emp-1",
		OriginalText:      "Sarah can't work Monday mornings",
		Constraints: model.ExtractedConstraints{
			Days:       []time.Weekday{time.Monday},
			Window:     &model.TimeWindow{Start: 9 * 60, End: 12 * 60},
			Qualifiers: map[string]string{model.QualifierExclude: "true"},
		},
		Priority: 1,
		Active:   true,
	}}

	// Window overlapping the exclusion is refused even though the base
	// pattern covers it, and the rule text comes back as the reason.
	d := Resolve(employee, monday, model.TimeWindow{Start: 9 * 60, End: 12 * 60}, rules)
	assert.False(t, d.Available)
	assert.Equal(t, "Sarah can't work Monday mornings", d.Reason)

	d = Resolve(employee, monday, model.TimeWindow{Start: 10 * 60, End: 13 * 60}, rules)
	assert.False(t, d.Available)

	// Outside the excluded window the base pattern still answers.
	d = Resolve(employee, monday, model.TimeWindow{Start: 13 * 60, End: 17 * 60}, rules)
	assert.True(t, d.Available)
}

func TestResolve_GrantRuleExtendsBase(t *testing.T) {
	employee := mondayNineToFive()
	rules := []model.Rule{{
		ID:                "rule-1",
		Type:              model.RuleAvailability,
		SubjectEmployeeID: "emp-1",
		Constraints: model.ExtractedConstraints{
			Days:   []time.Weekday{time.Monday},
			Window: &model.TimeWindow{Start: 17 * 60, End: 21 * 60},
		},
		Priority: 1,
		Active:   true,
	}}

	// Evening window outside the base pattern, granted by the rule.
	d := Resolve(employee, monday, model.TimeWindow{Start: 18 * 60, End: 20 * 60}, rules)
	assert.True(t, d.Available)

	// Window the grant only partly covers falls through to the base.
	d = Resolve(employee, monday, model.TimeWindow{Start: 16 * 60, End: 20 * 60}, rules)
	assert.False(t, d.Available)
}

func TestResolve_InactiveAndForeignRulesIgnored(t *testing.T) {
	employee := mondayNineToFive()
	exclusion := model.Rule{
		ID:                "rule-1",
		Type:              model.RuleAvailability,
		SubjectEmployeeID: "emp-1",
		Constraints: model.ExtractedConstraints{
			Qualifiers: map[string]string{model.QualifierExclude: "true"},
		},
		Priority: 1,
	}

	// Inactive rule has no effect.
	d := Resolve(employee, monday, model.TimeWindow{Start: 10 * 60, End: 12 * 60}, []model.Rule{exclusion})
	assert.True(t, d.Available)

	// Rule scoped to someone else has no effect either.
	foreign := exclusion
	foreign.SubjectEmployeeID = "emp-2"
	foreign.Active = true
	d = Resolve(employee, monday, model.TimeWindow{Start: 10 * 60, End: 12 * 60}, []model.Rule{foreign})
	assert.True(t, d.Available)
}

func TestResolve_WholeDayExclusion(t *testing.T) {
	employee := mondayNineToFive()
	rules := []model.Rule{{
		ID:                "rule-1",
		Type:              model.RuleAvailability,
		SubjectEmployeeID: "emp-1",
		Constraints: model.ExtractedConstraints{
			Days:       []time.Weekday{time.Monday},
			Qualifiers: map[string]string{model.QualifierExclude: "true"},
		},
		Priority: 1,
		Active:   true,
	}}

	// Nil window on the rule means the whole day is excluded.
	d := Resolve(employee, monday, model.TimeWindow{Start: 10 * 60, End: 11 * 60}, rules)
	assert.False(t, d.Available)
}

func TestResolve_BadDate(t *testing.T) {
	d := Resolve(mondayNineToFive(), "not-a-date", model.TimeWindow{Start: 10 * 60, End: 11 * 60}, nil)
	assert.False(t, d.Available)
	assert.NotEmpty(t, d.Reason)
}
