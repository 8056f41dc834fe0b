package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_ActiveRules(t *testing.T) {
	roster := Roster{
		Rules: []Rule{
			{ID: "r1", Type: RuleAvailability, Active: true},
			{ID: "r2", Type: RulePreference, Active: true},
			{ID: "r3", Type: RuleAvailability, Active: false},
			{ID: "r4", Type: RuleRestriction, Active: true},
		},
	}

	all := roster.ActiveRules()
	require.Len(t, all, 3)

	availability := roster.ActiveRules(RuleAvailability)
	require.Len(t, availability, 1)
	assert.Equal(t, "r1", availability[0].ID)

	hard := roster.ActiveRules(RuleAvailability, RuleRestriction)
	assert.Len(t, hard, 2)
}

func TestRoster_Lookups(t *testing.T) {
	roster := Roster{
		Employees: []Employee{{ID: "emp-1"}},
		Shifts:    []Shift{{ID: "shift-1"}},
	}

	_, ok := roster.EmployeeByID("emp-1")
	assert.True(t, ok)
	_, ok = roster.EmployeeByID("emp-2")
	assert.False(t, ok)

	_, ok = roster.ShiftByID("shift-1")
	assert.True(t, ok)
	_, ok = roster.ShiftByID("shift-2")
	assert.False(t, ok)
}
