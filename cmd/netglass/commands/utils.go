/*
File: utils.go
Description: Shared utilities for the netglass commands. Provides common
catalog loading and logging setup used across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/netglass/netglass/pkg/config"
	"github.com/netglass/netglass/pkg/logging"
)

// LoadCatalog loads and validates the device/catalog configuration file
// named by the --config flag or NETGLASS_CONFIG.
func LoadCatalog() (*config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		return nil, fmt.Errorf("no configuration file specified: use --config")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cfg, nil
}

// SetupLogging configures the logging system from the persistent flags
func SetupLogging() (*logging.Logger, error) {
	cfg := &logging.LoggerConfig{
		Level:      logging.LogLevel(viper.GetString("log_level")),
		Format:     logging.LogFormat(viper.GetString("log_format")),
		OutputDir:  viper.GetString("log_dir"),
		MaxSizeMB:  100,
		MaxBackups: 10,
		MaxAgeDays: 30,
		Timestamp:  true,
		Colors:     true,
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}
