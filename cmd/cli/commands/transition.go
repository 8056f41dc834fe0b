package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/core/services"
)

// TransitionCmd creates the transition command
func TransitionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "transition <schedule_id> <target_status>",
		Short: "Move a schedule through its lifecycle",
		Long:  "Move a schedule to a target lifecycle state: generated, validated, approved, rejected, published, or archived",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduleID := args[0]
			target := model.ScheduleStatus(args[1])

			app.Logger.Debug("transition command",
				zap.String("schedule_id", scheduleID),
				zap.String("target", string(target)))

			schedule, err := services.TransitionSchedule(
				app.Ctx,
				app.Database,
				app.Employees,
				app.Shifts,
				app.Logger,
				scheduleID,
				target,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Schedule %s is now %s.\n", schedule.ID, schedule.Status)
			return nil
		},
	}
}
