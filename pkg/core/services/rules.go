package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/db"
)

// ListRulesStore defines the database operations needed for listing and
// toggling rules.
type ListRulesStore interface {
	GetRules(ctx context.Context, activeOnly bool) ([]db.RuleRecord, error)
	SetRuleActive(ctx context.Context, id string, active bool) error
}

// ListRules fetches the stored rule set, optionally limited to active
// rules.
func ListRules(ctx context.Context, database ListRulesStore, logger *zap.Logger, activeOnly bool) ([]model.Rule, error) {
	records, err := database.GetRules(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rules: %w", err)
	}
	logger.Debug("Found rules", zap.Int("count", len(records)), zap.Bool("active_only", activeOnly))
	return rulesFromRecords(records), nil
}

// SetRuleActive toggles a rule's active flag. Deactivation is the only
// mutation a stored rule supports; corrections re-interpret the text as a
// new rule.
func SetRuleActive(ctx context.Context, database ListRulesStore, logger *zap.Logger, id string, active bool) error {
	if err := database.SetRuleActive(ctx, id, active); err != nil {
		return err
	}
	logger.Info("Rule toggled", zap.String("id", id), zap.Bool("active", active))
	return nil
}
