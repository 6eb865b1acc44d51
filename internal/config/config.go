package config

import (
	"os"
	"strconv"

	"artreport/internal/errors"

	"github.com/joho/godotenv"
)

// DefaultIndicator is the single indicator label in scope for the whole
// pipeline. Rows carrying any other label are dropped before the join.
const DefaultIndicator = "Estimated number of children (aged 0-14 years) living with HIV receiving antiretroviral treatment"

// Config represents the complete application configuration
type Config struct {
	Inputs Inputs
	Report ReportConfig
}

// Inputs holds the paths of the three source tables
type Inputs struct {
	IndicatorFile string
	MetadataFile  string
	GeometryFile  string
}

// ReportConfig holds report-level settings
type ReportConfig struct {
	OutputDir      string
	IndicatorLabel string
	TopN           int
	Title          string
}

// Load reads configuration from environment variables and validates it.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional, env vars win

	config := &Config{
		Inputs: Inputs{
			IndicatorFile: os.Getenv("INDICATOR_FILE"),
			MetadataFile:  os.Getenv("METADATA_FILE"),
			GeometryFile:  getEnvOrDefault("GEOMETRY_FILE", ""),
		},
		Report: ReportConfig{
			OutputDir:      getEnvOrDefault("OUTPUT_DIR", "out"),
			IndicatorLabel: getEnvOrDefault("INDICATOR_LABEL", DefaultIndicator),
			TopN:           getEnvIntOrDefault("TOP_N", 10),
			Title:          getEnvOrDefault("REPORT_TITLE", "Pediatric Antiretroviral Treatment Access"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Inputs.IndicatorFile == "" {
		return errors.ConfigInvalid("INDICATOR_FILE is required")
	}
	if config.Inputs.MetadataFile == "" {
		return errors.ConfigInvalid("METADATA_FILE is required")
	}
	if config.Report.IndicatorLabel == "" {
		return errors.ConfigInvalid("indicator label cannot be empty")
	}
	if config.Report.TopN <= 0 {
		return errors.ConfigInvalid("TOP_N must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
