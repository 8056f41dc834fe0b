package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/camdenward/staffrota/internal/config"
	"github.com/camdenward/staffrota/pkg/core/model"
	"github.com/camdenward/staffrota/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg       *config.Config
	Database  *postgres.DB
	Employees []model.Employee
	Shifts    []model.Shift
	Logger    *zap.Logger
	Ctx       context.Context
}
