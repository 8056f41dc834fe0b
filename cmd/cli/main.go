package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/camdenward/staffrota/cmd/cli/commands"
	"github.com/camdenward/staffrota/internal/config"
	"github.com/camdenward/staffrota/internal/roster"
	"github.com/camdenward/staffrota/pkg/postgres"
	"github.com/camdenward/staffrota/pkg/utils/logging"
)

var (
	env        string
	configPath string
	logDir     string
	verbose    bool
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "staffrota",
		Short: "Staff rota CLI - Manage employee shift schedules",
		Long:  `A CLI tool for interpreting scheduling rules, generating shift assignments, and managing schedule lifecycles.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Database != nil {
					app.Database.Close()
				}
				if app.Logger != nil {
					app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: staffrota_config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "logs", "Directory for log files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.InterpretRuleCmd(appRef()))
	rootCmd.AddCommand(commands.ListRulesCmd(appRef()))
	rootCmd.AddCommand(commands.ToggleRuleCmd(appRef()))
	rootCmd.AddCommand(commands.GenerateScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ValidateScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.TransitionCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared context before it is populated; initApp fills
// it in during PersistentPreRunE.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, roster snapshots, and database
func initApp() error {
	var err error
	app = appRef()
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(logging.Options{Env: env, Dir: logDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Loading roster", zap.String("file", app.Cfg.RosterFile))
	app.Employees, app.Shifts, err = roster.Load(app.Cfg.RosterFile)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	app.Logger.Debug("Roster loaded",
		zap.Int("employees", len(app.Employees)),
		zap.Int("shifts", len(app.Shifts)))

	app.Logger.Info("Connecting to database")
	app.Database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Logger.Info("Running migrations")
	if err := app.Database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database initialized successfully")

	return nil
}
