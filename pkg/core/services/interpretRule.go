package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/camdenward/staffrota/pkg/core/interpreter"
	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/db"
)

// InterpretRuleStore defines the database operations needed for saving an
// interpreted rule.
type InterpretRuleStore interface {
	InsertRule(ctx context.Context, record *db.RuleRecord) error
}

// InterpretRule converts a natural-language scheduling statement into a
// structured rule and persists it. If dryRun is true the rule is returned
// without being saved.
func InterpretRule(
	ctx context.Context,
	database InterpretRuleStore,
	employees []model.Employee,
	logger *zap.Logger,
	text string,
	dryRun bool,
) (model.Rule, error) {
	logger.Debug("Interpreting rule", zap.String("text", text), zap.Bool("dry_run", dryRun))

	rule, err := interpreter.New(employees).Interpret(text)
	if err != nil {
		return model.Rule{}, err
	}

	logger.Info("Interpreted rule",
		zap.String("id", rule.ID),
		zap.String("type", string(rule.Type)),
		zap.String("subject", rule.SubjectEmployeeID),
		zap.Int("priority", rule.Priority))

	if dryRun {
		logger.Info("Dry run mode - rule not saved")
		return rule, nil
	}

	record := ruleToRecord(rule)
	if err := database.InsertRule(ctx, &record); err != nil {
		return model.Rule{}, fmt.Errorf("failed to save rule: %w", err)
	}
	logger.Info("Rule saved", zap.String("id", rule.ID))
	return rule, nil
}
