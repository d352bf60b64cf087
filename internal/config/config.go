package config

import (
	"os"
	"path/filepath"
	"strconv"

	"fatalview/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `validate:"required"`
	Ops    OpsConfig
	Data   DataConfig `validate:"required"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `validate:"required"`
	GinMode string
}

// OpsConfig holds the operational sidecar server settings
type OpsConfig struct {
	Port         string
	PprofEnabled bool
}

// DataConfig holds the six source file locations. Each path defaults to
// <DATA_DIR>/<name>.csv and can be overridden individually, so a source
// can also point at an .xlsx workbook.
type DataConfig struct {
	Dir          string `validate:"required"`
	PersonFile   string
	ImpairFile   string
	DistractFile string
	VehicleFile  string
	DrugsFile    string
	AccidentFile string
}

// SourcePaths returns the resolved file paths keyed by source name.
func (d DataConfig) SourcePaths() map[string]string {
	return map[string]string{
		"person":   d.PersonFile,
		"drimpair": d.ImpairFile,
		"distract": d.DistractFile,
		"vehicle":  d.VehicleFile,
		"drugs":    d.DrugsFile,
		"accident": d.AccidentFile,
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	config.Server = *loadServerConfig()
	config.Ops = *loadOpsConfig()

	dataConfig, err := loadDataConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load data configuration")
	}
	config.Data = *dataConfig

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadOpsConfig() *OpsConfig {
	return &OpsConfig{
		Port:         getEnvOrDefault("OPS_PORT", "6060"),
		PprofEnabled: getEnvBoolOrDefault("PPROF_ENABLED", true),
	}
}

func loadDataConfig() (*DataConfig, error) {
	dir := getEnvOrDefault("DATA_DIR", "./data")
	if dir == "" {
		return nil, errors.ConfigInvalid("DATA_DIR is required")
	}

	return &DataConfig{
		Dir:          dir,
		PersonFile:   getEnvOrDefault("PERSON_FILE", filepath.Join(dir, "person.csv")),
		ImpairFile:   getEnvOrDefault("DRIMPAIR_FILE", filepath.Join(dir, "drimpair.csv")),
		DistractFile: getEnvOrDefault("DISTRACT_FILE", filepath.Join(dir, "distract.csv")),
		VehicleFile:  getEnvOrDefault("VEHICLE_FILE", filepath.Join(dir, "vehicle.csv")),
		DrugsFile:    getEnvOrDefault("DRUGS_FILE", filepath.Join(dir, "drugs.csv")),
		AccidentFile: getEnvOrDefault("ACCIDENT_FILE", filepath.Join(dir, "accident.csv")),
	}, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	for source, path := range config.Data.SourcePaths() {
		if path == "" {
			return errors.ConfigInvalid("no file path configured for source " + source)
		}
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
