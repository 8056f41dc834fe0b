package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// ShiftPattern describes a recurring shift template. When a roster file
// supplies no shifts, patterns are expanded over the requested date range.
type ShiftPattern struct {
	RRule          string   `yaml:"rrule" validate:"required"`
	Start          string   `yaml:"start" validate:"required"`
	End            string   `yaml:"end" validate:"required"`
	Department     string   `yaml:"department" validate:"required"`
	Headcount      int      `yaml:"headcount" validate:"required,min=1"`
	Qualifications []string `yaml:"qualifications,omitempty"`
}

// Config represents the application configuration.
type Config struct {
	DatabaseURL              string         `yaml:"databaseURL" validate:"required"`
	RosterFile               string         `yaml:"rosterFile" validate:"required"`
	CoverageWarningThreshold float64        `yaml:"coverageWarningThreshold" validate:"gte=0,lte=100"`
	ShiftPatterns            []ShiftPattern `yaml:"shiftPatterns,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from staffrota_config.yaml,
// looking in the current directory first, then the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, rrule syntax, and clock
// times for each shift pattern.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, pattern := range cfg.ShiftPatterns {
		if _, err := rrule.StrToRRule(pattern.RRule); err != nil {
			return fmt.Errorf("invalid rrule in shiftPatterns[%d]: %w", i, err)
		}
		start, err := model.ParseClock(pattern.Start)
		if err != nil {
			return fmt.Errorf("invalid start in shiftPatterns[%d]: %w", i, err)
		}
		end, err := model.ParseClock(pattern.End)
		if err != nil {
			return fmt.Errorf("invalid end in shiftPatterns[%d]: %w", i, err)
		}
		if start >= end {
			return fmt.Errorf("empty window in shiftPatterns[%d]: %s-%s", i, pattern.Start, pattern.End)
		}
	}

	return nil
}

// findConfigFile searches for staffrota_config.yaml in the current and
// home directories.
func findConfigFile() (string, error) {
	configFileName := "staffrota_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
