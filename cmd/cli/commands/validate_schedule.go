package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/camdenward/staffrota/pkg/core/services"
)

// ValidateScheduleCmd creates the validateSchedule command
func ValidateScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validateSchedule <schedule_id>",
		Short: "Run conflict detection over a schedule and mark it validated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduleID := args[0]

			app.Logger.Debug("validateSchedule command", zap.String("schedule_id", scheduleID))

			result, err := services.ValidateSchedule(
				app.Ctx,
				app.Database,
				app.Employees,
				app.Shifts,
				app.Logger,
				scheduleID,
			)
			if err != nil {
				return err
			}

			fmt.Println()
			printConflicts(result.Conflicts)
			if result.Valid {
				fmt.Printf("✅ Schedule %s validated.\n", result.Schedule.ID)
			} else {
				fmt.Printf("❌ Schedule %s not validated: %d open conflicts.\n",
					result.Schedule.ID, len(result.Conflicts))
				fmt.Println("💡 Resolve the conflicts and regenerate, then validate again.")
			}
			return nil
		},
	}
}
