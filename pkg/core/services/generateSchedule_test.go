package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/camdenward/staffrota/internal/config"
	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/core/workflow"
	"github.com/camdenward/staffrota/pkg/db"
)

// mockStore implements every service store interface for testing
type mockStore struct {
	schedules   []db.ScheduleRecord
	rules       []db.RuleRecord
	assignments map[string][]db.AssignmentRecord

	insertScheduleErr error
	getRulesErr       error

	insertedRules []db.RuleRecord
	statusUpdates map[string]string
	replacedFor   []string
	toggledRules  map[string]bool
}

func newMockStore() *mockStore {
	return &mockStore{
		assignments:   map[string][]db.AssignmentRecord{},
		statusUpdates: map[string]string{},
		toggledRules:  map[string]bool{},
	}
}

func (m *mockStore) FindSchedule(ctx context.Context, department, startDate, endDate string) (*db.ScheduleRecord, error) {
	for i := range m.schedules {
		s := m.schedules[i]
		if s.Department == department && s.StartDate == startDate && s.EndDate == endDate {
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockStore) GetSchedule(ctx context.Context, id string) (*db.ScheduleRecord, error) {
	for i := range m.schedules {
		if m.schedules[i].ID == id {
			s := m.schedules[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockStore) InsertSchedule(ctx context.Context, record *db.ScheduleRecord) error {
	if m.insertScheduleErr != nil {
		return m.insertScheduleErr
	}
	m.schedules = append(m.schedules, *record)
	return nil
}

func (m *mockStore) UpdateScheduleStatus(ctx context.Context, id, status string) error {
	m.statusUpdates[id] = status
	for i := range m.schedules {
		if m.schedules[i].ID == id {
			m.schedules[i].Status = status
		}
	}
	return nil
}

func (m *mockStore) GetRules(ctx context.Context, activeOnly bool) ([]db.RuleRecord, error) {
	if m.getRulesErr != nil {
		return nil, m.getRulesErr
	}
	if !activeOnly {
		return m.rules, nil
	}
	var active []db.RuleRecord
	for _, r := range m.rules {
		if r.Active {
			active = append(active, r)
		}
	}
	return active, nil
}

func (m *mockStore) GetActiveRules(ctx context.Context) ([]db.RuleRecord, error) {
	return m.GetRules(ctx, true)
}

func (m *mockStore) InsertRule(ctx context.Context, record *db.RuleRecord) error {
	m.insertedRules = append(m.insertedRules, *record)
	m.rules = append(m.rules, *record)
	return nil
}

func (m *mockStore) SetRuleActive(ctx context.Context, id string, active bool) error {
	m.toggledRules[id] = active
	return nil
}

func (m *mockStore) GetAssignments(ctx context.Context, scheduleID string) ([]db.AssignmentRecord, error) {
	return m.assignments[scheduleID], nil
}

func (m *mockStore) ReplaceAssignments(ctx context.Context, scheduleID string, records []db.AssignmentRecord) error {
	m.assignments[scheduleID] = records
	m.replacedFor = append(m.replacedFor, scheduleID)
	return nil
}

func allWeek(window model.TimeWindow) map[time.Weekday]model.TimeWindow {
	pattern := map[time.Weekday]model.TimeWindow{}
	for day := time.Sunday; day <= time.Saturday; day++ {
		pattern[day] = window
	}
	return pattern
}

func testEmployees() []model.Employee {
	return []model.Employee{
		{
			ID:                 "emp-1",
			Name:               "Sarah Khan",
			MaxHoursPerWeek:    40,
			WeeklyAvailability: allWeek(model.TimeWindow{Start: 0, End: model.EndOfDay}),
		},
		{
			ID:                 "emp-2",
			Name:               "James Obi",
			MaxHoursPerWeek:    40,
			WeeklyAvailability: allWeek(model.TimeWindow{Start: 0, End: model.EndOfDay}),
		},
	}
}

func testShifts() []model.Shift {
	return []model.Shift{
		{
			ID:         "s-mon",
			Date:       "2026-03-02",
			Window:     model.TimeWindow{Start: 9 * 60, End: 17 * 60},
			Headcount:  1,
			Department: "kitchen",
		},
		{
			ID:         "s-tue",
			Date:       "2026-03-03",
			Window:     model.TimeWindow{Start: 9 * 60, End: 17 * 60},
			Headcount:  1,
			Department: "kitchen",
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL: "postgres://localhost/test",
		RosterFile:  "roster.yaml",
	}
}

func TestGenerateSchedule_CreatesAndPersists(t *testing.T) {
	store := newMockStore()

	result, err := GenerateSchedule(
		context.Background(), store, testEmployees(), testShifts(),
		testConfig(), zap.NewNop(), "kitchen", "2026-03-02", "2026-03-08", false,
	)
	require.NoError(t, err)

	assert.Equal(t, model.ScheduleGenerated, result.Schedule.Status)
	assert.Len(t, result.Result.Assignments, 2)
	assert.InDelta(t, 100.0, result.Result.CoveragePercentage, 0.001)

	// A draft row was created, assignments replaced, status persisted.
	require.Len(t, store.schedules, 1)
	assert.Equal(t, []string{result.Schedule.ID}, store.replacedFor)
	assert.Equal(t, string(model.ScheduleGenerated), store.statusUpdates[result.Schedule.ID])
	assert.Len(t, store.assignments[result.Schedule.ID], 2)
}

func TestGenerateSchedule_DryRunDoesNotPersist(t *testing.T) {
	store := newMockStore()

	result, err := GenerateSchedule(
		context.Background(), store, testEmployees(), testShifts(),
		testConfig(), zap.NewNop(), "kitchen", "2026-03-02", "2026-03-08", true,
	)
	require.NoError(t, err)

	assert.Len(t, result.Result.Assignments, 2)
	assert.Empty(t, store.schedules)
	assert.Empty(t, store.replacedFor)
	assert.Empty(t, store.statusUpdates)
}

func TestGenerateSchedule_RegenerationReplacesAssignments(t *testing.T) {
	store := newMockStore()
	store.schedules = []db.ScheduleRecord{{
		ID:         "sched-1",
		Department: "kitchen",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-08",
		Status:     string(model.ScheduleGenerated),
	}}
	store.assignments["sched-1"] = []db.AssignmentRecord{{
		ID:         "old-1",
		ScheduleID: "sched-1",
		EmployeeID: "emp-1",
		ShiftID:    "s-mon",
		Date:       "2026-03-02",
		Status:     string(model.AssignmentDeclined),
	}}

	result, err := GenerateSchedule(
		context.Background(), store, testEmployees(), testShifts(),
		testConfig(), zap.NewNop(), "kitchen", "2026-03-02", "2026-03-08", false,
	)
	require.NoError(t, err)

	assert.Equal(t, "sched-1", result.Schedule.ID)
	// The declined prior is preserved and its slot refilled.
	assert.Len(t, result.Result.Assignments, 3)
	assert.Len(t, store.assignments["sched-1"], 3)
}

func TestGenerateSchedule_RefusesPublishedSchedule(t *testing.T) {
	store := newMockStore()
	store.schedules = []db.ScheduleRecord{{
		ID:         "sched-1",
		Department: "kitchen",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-08",
		Status:     string(model.SchedulePublished),
	}}

	_, err := GenerateSchedule(
		context.Background(), store, testEmployees(), testShifts(),
		testConfig(), zap.NewNop(), "kitchen", "2026-03-02", "2026-03-08", false,
	)
	require.Error(t, err)

	var transitionErr *workflow.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, model.SchedulePublished, transitionErr.From)
	assert.Empty(t, store.replacedFor)
}

func TestGenerateSchedule_FiltersOtherDepartments(t *testing.T) {
	store := newMockStore()
	shifts := testShifts()
	shifts[1].Department = "front"

	result, err := GenerateSchedule(
		context.Background(), store, testEmployees(), shifts,
		testConfig(), zap.NewNop(), "kitchen", "2026-03-02", "2026-03-08", false,
	)
	require.NoError(t, err)

	require.Len(t, result.Result.Assignments, 1)
	assert.Equal(t, "s-mon", result.Result.Assignments[0].ShiftID)
}

func TestGenerateSchedule_InvalidDateRange(t *testing.T) {
	store := newMockStore()

	_, err := GenerateSchedule(
		context.Background(), store, testEmployees(), testShifts(),
		testConfig(), zap.NewNop(), "kitchen", "2026-03-08", "2026-03-02", false,
	)
	assert.Error(t, err)

	_, err = GenerateSchedule(
		context.Background(), store, testEmployees(), testShifts(),
		testConfig(), zap.NewNop(), "kitchen", "yesterday", "2026-03-02", false,
	)
	assert.Error(t, err)
}

func TestGenerateSchedule_StoreFailure(t *testing.T) {
	store := newMockStore()
	store.insertScheduleErr = errors.New("connection lost")

	_, err := GenerateSchedule(
		context.Background(), store, testEmployees(), testShifts(),
		testConfig(), zap.NewNop(), "kitchen", "2026-03-02", "2026-03-08", false,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}
