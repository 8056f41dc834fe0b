package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camdenward/staffrota/pkg/core/services"
)

// ListRulesCmd creates the listRules command
func ListRulesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listRules",
		Short: "List stored scheduling rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			rules, err := services.ListRules(app.Ctx, app.Database, app.Logger, !all)
			if err != nil {
				return err
			}

			if len(rules) == 0 {
				fmt.Println("No rules stored.")
				return nil
			}

			fmt.Printf("\nFound %d rules:\n\n", len(rules))
			for _, rule := range rules {
				marker := " "
				if !rule.Active {
					marker = "✗"
				}
				subject := rule.SubjectEmployeeID
				if subject == "" {
					subject = "(all)"
				}
				fmt.Printf("%s %s  %-12s p%d %-20s %q\n",
					marker, rule.ID, rule.Type, rule.Priority, subject, rule.OriginalText)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include deactivated rules")

	return cmd
}

// ToggleRuleCmd creates the toggleRule command
func ToggleRuleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggleRule <rule_id> <active>",
		Short: "Activate or deactivate a stored rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleID := args[0]
			var active bool
			switch args[1] {
			case "true", "on", "active":
				active = true
			case "false", "off", "inactive":
				active = false
			default:
				return fmt.Errorf("active must be true or false, got %q", args[1])
			}

			if err := services.SetRuleActive(app.Ctx, app.Database, app.Logger, ruleID, active); err != nil {
				return err
			}

			state := "deactivated"
			if active {
				state = "activated"
			}
			fmt.Printf("✅ Rule %s %s.\n", ruleID, state)
			return nil
		},
	}
}
