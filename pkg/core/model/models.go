package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// RuleType classifies how a rule participates in scheduling.
type RuleType string

const (
	// RuleAvailability gates point-in-time eligibility outright.
	RuleAvailability RuleType = "availability"
	// RulePreference is a soft constraint used only for candidate ranking.
	RulePreference RuleType = "preference"
	// RuleRequirement is a hard obligation constraint.
	RuleRequirement RuleType = "requirement"
	// RuleRestriction is a hard limiting constraint (e.g. hour caps).
	RuleRestriction RuleType = "restriction"
)

func (t RuleType) IsValid() bool {
	switch t {
	case RuleAvailability, RulePreference, RuleRequirement, RuleRestriction:
		return true
	}
	return false
}

// IsHard reports whether violating a rule of this type blocks validation.
func (t RuleType) IsHard() bool {
	return t == RuleRequirement || t == RuleRestriction || t == RuleAvailability
}

// ExtractedConstraints holds the structured portion of an interpreted rule.
type ExtractedConstraints struct {
	// Days the rule applies to. Empty means every day.
	Days []time.Weekday
	// Window the rule applies to. Nil means the whole day.
	Window *TimeWindow
	// Qualifiers carries free-form key/value details such as "max_hours"
	// or "exclude".
	Qualifiers map[string]string
}

// QualifierExclude marks an availability rule as an exclusion window.
const QualifierExclude = "exclude"

// QualifierMaxHours carries a numeric weekly hour cap on restriction rules.
const QualifierMaxHours = "max_hours"

// Rule is a structured, machine-checkable constraint. Rules are immutable
// once created except for Active toggling.
type Rule struct {
	ID                string
	Type              RuleType
	SubjectEmployeeID string // empty means the rule applies to all employees
	OriginalText      string
	Constraints       ExtractedConstraints
	Priority          int // 1 (highest) .. 5
	Active            bool
}

// Validate checks structural soundness of a rule. A rule failing this check
// must be fixed before any generation using it can be trusted.
func (r Rule) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("rule %s: unknown type %q", r.ID, r.Type)
	}
	if r.Priority < 1 || r.Priority > 5 {
		return fmt.Errorf("rule %s: priority %d out of range 1..5", r.ID, r.Priority)
	}
	if w := r.Constraints.Window; w != nil && w.Start >= w.End {
		return fmt.Errorf("rule %s: empty time window %s", r.ID, w)
	}
	if raw, ok := r.Constraints.Qualifiers[QualifierMaxHours]; ok {
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("rule %s: non-numeric %s qualifier %q", r.ID, QualifierMaxHours, raw)
		}
	}
	return nil
}

// AppliesTo reports whether the rule is scoped to the given employee and day.
func (r Rule) AppliesTo(employeeID string, day time.Weekday) bool {
	if r.SubjectEmployeeID != "" && r.SubjectEmployeeID != employeeID {
		return false
	}
	if len(r.Constraints.Days) == 0 {
		return true
	}
	return slices.Contains(r.Constraints.Days, day)
}

// MaxHours returns the numeric hour cap carried by a restriction rule.
func (r Rule) MaxHours() (float64, bool) {
	raw, ok := r.Constraints.Qualifiers[QualifierMaxHours]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Excludes reports whether an availability rule marks its window as
// excluded rather than granted.
func (r Rule) Excludes() bool {
	return r.Constraints.Qualifiers[QualifierExclude] == "true"
}

// Employee is a read-only roster snapshot entry. The core never mutates it.
type Employee struct {
	ID              string
	Name            string
	Qualifications  []string
	MaxHoursPerWeek float64
	MinRestHours    float64
	// WeeklyAvailability maps each weekday to the window the employee may
	// work. A missing day means unavailable all day.
	WeeklyAvailability map[time.Weekday]TimeWindow
}

// HasQualification reports whether the employee holds the given tag.
func (e Employee) HasQualification(tag string) bool {
	return slices.Contains(e.Qualifications, tag)
}

// Shift is a read-only roster snapshot entry describing a slot to fill.
type Shift struct {
	ID                     string
	Date                   string // DateLayout
	Window                 TimeWindow
	RequiredQualifications []string
	Headcount              int
	Department             string
}

// Weekday returns the day of week the shift falls on.
func (s Shift) Weekday() (time.Weekday, error) {
	d, err := ParseDate(s.Date)
	if err != nil {
		return 0, err
	}
	return d.Weekday(), nil
}

// DurationHours returns the shift length in hours.
func (s Shift) DurationHours() float64 {
	return s.Window.DurationHours()
}

// AssignmentStatus tracks the employee-facing lifecycle of an assignment.
type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentDeclined  AssignmentStatus = "declined"
	AssignmentPending   AssignmentStatus = "pending"
)

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentAssigned, AssignmentConfirmed, AssignmentDeclined, AssignmentPending:
		return true
	}
	return false
}

// Assignment pairs an employee with a shift on a date.
type Assignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	Date       string // DateLayout
	Status     AssignmentStatus
	Priority   int
	Notes      string
}

// Counts reports whether the assignment occupies the employee's time.
// Declined assignments free the slot.
func (a Assignment) Counts() bool {
	return a.Status != AssignmentDeclined
}

// ConflictKind names a category of schedule violation.
type ConflictKind string

const (
	ConflictDoubleBooking         ConflictKind = "double_booking"
	ConflictMaxHoursExceeded      ConflictKind = "max_hours_exceeded"
	ConflictInsufficientRest      ConflictKind = "insufficient_rest"
	ConflictQualificationMismatch ConflictKind = "qualification_mismatch"
	ConflictUnavailable           ConflictKind = "unavailable"
)

// Conflict reports a single violation found by the detector. Conflicts are
// data, never errors; disposition belongs to the workflow layer.
type Conflict struct {
	Kind       ConflictKind
	EmployeeID string
	ShiftIDs   []string // sorted
	Date       string
	Detail     string
}

// Key identifies a conflict for deduplication and unordered comparison.
func (c Conflict) Key() string {
	ids := slices.Clone(c.ShiftIDs)
	slices.Sort(ids)
	return string(c.Kind) + "|" + c.EmployeeID + "|" + strings.Join(ids, ",")
}

// GenerationResult is the transient outcome of one engine run. Ownership
// is the caller's; the core never persists it.
type GenerationResult struct {
	Assignments        []Assignment
	UnmetShifts        []Shift
	Conflicts          []Conflict
	Warnings           []string
	CoveragePercentage float64
}

// ScheduleStatus is the lifecycle state of a schedule.
type ScheduleStatus string

const (
	ScheduleDraft     ScheduleStatus = "draft"
	ScheduleGenerated ScheduleStatus = "generated"
	ScheduleValidated ScheduleStatus = "validated"
	ScheduleApproved  ScheduleStatus = "approved"
	ScheduleRejected  ScheduleStatus = "rejected"
	SchedulePublished ScheduleStatus = "published"
	ScheduleArchived  ScheduleStatus = "archived"
)

func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleDraft, ScheduleGenerated, ScheduleValidated, ScheduleApproved,
		ScheduleRejected, SchedulePublished, ScheduleArchived:
		return true
	}
	return false
}

// Schedule references an externally persisted schedule. The core owns only
// the transition rules over Status, not its storage.
type Schedule struct {
	ID         string
	Department string
	StartDate  string // DateLayout
	EndDate    string // DateLayout
	Status     ScheduleStatus
}
