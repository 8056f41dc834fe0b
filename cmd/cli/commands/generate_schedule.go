package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/camdenward/staffrota/internal/roster"
	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule <department> <start_date> <end_date>",
		Short: "Generate shift assignments for a department and date range",
		Long:  "Run the assignment engine over the department's shifts, creating or regenerating the schedule for the range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			department, startDate, endDate := args[0], args[1], args[2]
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("generateSchedule command",
				zap.String("department", department),
				zap.String("start", startDate),
				zap.String("end", endDate),
				zap.Bool("dry_run", dryRun))

			shifts := app.Shifts
			if len(app.Cfg.ShiftPatterns) > 0 {
				expanded, err := roster.ExpandShifts(app.Cfg.ShiftPatterns, startDate, endDate)
				if err != nil {
					return fmt.Errorf("failed to expand shift patterns: %w", err)
				}
				shifts = append(shifts, expanded...)
			}

			result, err := services.GenerateSchedule(
				app.Ctx,
				app.Database,
				app.Employees,
				shifts,
				app.Cfg,
				app.Logger,
				department,
				startDate,
				endDate,
				dryRun,
			)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Printf("\n📅 Schedule Generation Results\n\n")
			fmt.Printf("Schedule ID: %s\n", result.Schedule.ID)
			fmt.Printf("Department:  %s\n", result.Schedule.Department)
			fmt.Printf("Date Range:  %s to %s\n", result.Schedule.StartDate, result.Schedule.EndDate)
			fmt.Printf("Coverage:    %.1f%%\n", result.Result.CoveragePercentage)
			if dryRun {
				fmt.Printf("Mode:        🧪 DRY RUN (not saved)\n")
			} else {
				fmt.Printf("Status:      %s\n", result.Schedule.Status)
			}
			fmt.Println()

			printAssignments(result.Result.Assignments)

			if len(result.Result.UnmetShifts) > 0 {
				fmt.Printf("⚠️  Unmet Shifts (%d):\n", len(result.Result.UnmetShifts))
				for _, shift := range result.Result.UnmetShifts {
					fmt.Printf("  • %s on %s %s-%s (needs %d)\n",
						shift.ID, shift.Date, shift.Window.Start, shift.Window.End, shift.Headcount)
				}
				fmt.Println()
			}

			printConflicts(result.Result.Conflicts)

			for _, warning := range result.Result.Warnings {
				fmt.Printf("⚠️  %s\n", warning)
			}

			if dryRun {
				fmt.Println("💡 This was a dry run. Use without --dry-run to save assignments.")
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to database")

	return cmd
}

func printAssignments(assignments []model.Assignment) {
	if len(assignments) == 0 {
		fmt.Println("No assignments.")
		fmt.Println()
		return
	}
	fmt.Printf("Assignments (%d):\n", len(assignments))
	for _, a := range assignments {
		fmt.Printf("  %s  %-20s -> %s (%s)\n", a.Date, a.EmployeeID, a.ShiftID, a.Status)
	}
	fmt.Println()
}

func printConflicts(conflicts []model.Conflict) {
	if len(conflicts) == 0 {
		return
	}
	fmt.Printf("❌ Conflicts (%d):\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Printf("  • [%s] %s: %s\n", c.Kind, c.EmployeeID, c.Detail)
	}
	fmt.Println()
}
