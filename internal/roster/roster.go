// Package roster loads employee and shift snapshots from YAML files, the
// plain-data boundary to the external employee directory and shift
// planner.
package roster

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// EmployeeEntry is one employee in a roster file.
type EmployeeEntry struct {
	ID              string                `yaml:"id" validate:"required"`
	Name            string                `yaml:"name" validate:"required"`
	Qualifications  []string              `yaml:"qualifications,omitempty"`
	MaxHoursPerWeek float64               `yaml:"maxHoursPerWeek" validate:"required,gt=0"`
	MinRestHours    float64               `yaml:"minRestHours" validate:"gte=0"`
	Availability    map[string]TimeWindow `yaml:"availability" validate:"required"`
}

// TimeWindow is a clock range in a roster file.
type TimeWindow struct {
	Start string `yaml:"start" validate:"required"`
	End   string `yaml:"end" validate:"required"`
}

// ShiftEntry is one shift in a roster file.
type ShiftEntry struct {
	ID             string   `yaml:"id" validate:"required"`
	Date           string   `yaml:"date" validate:"required"`
	Start          string   `yaml:"start" validate:"required"`
	End            string   `yaml:"end" validate:"required"`
	Qualifications []string `yaml:"qualifications,omitempty"`
	Headcount      int      `yaml:"headcount" validate:"required,min=1"`
	Department     string   `yaml:"department" validate:"required"`
}

// File is the YAML roster document.
type File struct {
	Employees []EmployeeEntry `yaml:"employees" validate:"required,min=1,dive"`
	Shifts    []ShiftEntry    `yaml:"shifts,omitempty" validate:"dive"`
}

var validate = validator.New()

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load reads and validates a roster file, converting it to core snapshots.
func Load(path string) ([]model.Employee, []model.Shift, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse roster file: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, nil, fmt.Errorf("roster validation failed: %w", err)
	}

	employees, err := convertEmployees(file.Employees)
	if err != nil {
		return nil, nil, err
	}
	shifts, err := convertShifts(file.Shifts)
	if err != nil {
		return nil, nil, err
	}
	return employees, shifts, nil
}

func convertEmployees(entries []EmployeeEntry) ([]model.Employee, error) {
	employees := make([]model.Employee, 0, len(entries))
	for _, entry := range entries {
		pattern := make(map[time.Weekday]model.TimeWindow, len(entry.Availability))
		for dayName, window := range entry.Availability {
			day, ok := weekdayNames[strings.ToLower(dayName)]
			if !ok {
				return nil, fmt.Errorf("employee %s: unknown weekday %q", entry.ID, dayName)
			}
			w, err := parseWindow(window)
			if err != nil {
				return nil, fmt.Errorf("employee %s: %w", entry.ID, err)
			}
			pattern[day] = w
		}
		employees = append(employees, model.Employee{
			ID:                 entry.ID,
			Name:               entry.Name,
			Qualifications:     entry.Qualifications,
			MaxHoursPerWeek:    entry.MaxHoursPerWeek,
			MinRestHours:       entry.MinRestHours,
			WeeklyAvailability: pattern,
		})
	}
	return employees, nil
}

func convertShifts(entries []ShiftEntry) ([]model.Shift, error) {
	shifts := make([]model.Shift, 0, len(entries))
	for _, entry := range entries {
		if _, err := model.ParseDate(entry.Date); err != nil {
			return nil, fmt.Errorf("shift %s: %w", entry.ID, err)
		}
		w, err := parseWindow(TimeWindow{Start: entry.Start, End: entry.End})
		if err != nil {
			return nil, fmt.Errorf("shift %s: %w", entry.ID, err)
		}
		shifts = append(shifts, model.Shift{
			ID:                     entry.ID,
			Date:                   entry.Date,
			Window:                 w,
			RequiredQualifications: entry.Qualifications,
			Headcount:              entry.Headcount,
			Department:             entry.Department,
		})
	}
	return shifts, nil
}

func parseWindow(window TimeWindow) (model.TimeWindow, error) {
	start, err := model.ParseClock(window.Start)
	if err != nil {
		return model.TimeWindow{}, err
	}
	end, err := model.ParseClock(window.End)
	if err != nil {
		return model.TimeWindow{}, err
	}
	if start >= end {
		return model.TimeWindow{}, fmt.Errorf("empty window %s-%s", window.Start, window.End)
	}
	return model.TimeWindow{Start: start, End: end}, nil
}
