package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/core/services"
)

// InterpretRuleCmd creates the interpretRule command
func InterpretRuleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interpretRule <text>",
		Short: "Interpret a natural-language scheduling rule and store it",
		Long:  "Convert a plain-English scheduling statement into a structured rule, e.g. \"Sarah can't work past 5pm on weekdays\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("interpretRule command",
				zap.String("text", text),
				zap.Bool("dry_run", dryRun))

			rule, err := services.InterpretRule(app.Ctx, app.Database, app.Employees, app.Logger, text, dryRun)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Rule interpreted\n\n")
			printRule(rule)
			if dryRun {
				fmt.Println("💡 This was a dry run. Use without --dry-run to save the rule.")
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Interpret without saving to database")

	return cmd
}

func printRule(rule model.Rule) {
	fmt.Printf("Rule ID:   %s\n", rule.ID)
	fmt.Printf("Type:      %s\n", rule.Type)
	fmt.Printf("Priority:  %d\n", rule.Priority)
	if rule.SubjectEmployeeID != "" {
		fmt.Printf("Subject:   %s\n", rule.SubjectEmployeeID)
	} else {
		fmt.Printf("Subject:   (all employees)\n")
	}
	if len(rule.Constraints.Days) > 0 {
		names := make([]string, len(rule.Constraints.Days))
		for i, day := range rule.Constraints.Days {
			names[i] = day.String()
		}
		fmt.Printf("Days:      %s\n", strings.Join(names, ", "))
	}
	if window := rule.Constraints.Window; window != nil {
		fmt.Printf("Window:    %s-%s\n", window.Start, window.End)
	}
	for key, value := range rule.Constraints.Qualifiers {
		fmt.Printf("Qualifier: %s=%s\n", key, value)
	}
	fmt.Printf("Text:      %q\n\n", rule.OriginalText)
}
