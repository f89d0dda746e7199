// Package config provides configuration loading and validation for gradefang.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("invalid report format")
	ErrInvalidTopN      = errors.New("report top_n must not be negative")
	ErrInvalidDelimiter = errors.New("input delimiter must be a single character")
	ErrInvalidLogLevel  = errors.New("invalid logging level")
	ErrInvalidLogFormat = errors.New("invalid logging format")
)

// Report output formats.
const (
	FormatText    = "text"
	FormatCompact = "compact"
	FormatJSON    = "json"
	FormatPlot    = "plot"
)

// Default configuration values. TopN 0 renders ranking tables in full.
const (
	DefaultFormat    = FormatText
	DefaultTopN      = 0
	DefaultDelimiter = ","
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stderr"
)

// Config holds all configuration for gradefang.
type Config struct {
	Report  ReportConfig  `mapstructure:"report"`
	Input   InputConfig   `mapstructure:"input"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ReportConfig holds report rendering configuration.
type ReportConfig struct {
	Format  string `mapstructure:"format"`
	TopN    int    `mapstructure:"top_n"`
	Verbose bool   `mapstructure:"verbose"`
	NoColor bool   `mapstructure:"no_color"`
}

// InputConfig holds CSV input configuration.
type InputConfig struct {
	Delimiter string `mapstructure:"delimiter"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/gradefang")
	}

	viperCfg.SetEnvPrefix("GRADEFANG")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Report defaults.
	viperCfg.SetDefault("report.format", DefaultFormat)
	viperCfg.SetDefault("report.top_n", DefaultTopN)
	viperCfg.SetDefault("report.verbose", false)
	viperCfg.SetDefault("report.no_color", false)

	// Input defaults.
	viperCfg.SetDefault("input.delimiter", DefaultDelimiter)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)
	viperCfg.SetDefault("logging.output", DefaultLogOutput)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	switch config.Report.Format {
	case FormatText, FormatCompact, FormatJSON, FormatPlot:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Report.Format)
	}

	if config.Report.TopN < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTopN, config.Report.TopN)
	}

	if len(config.Input.Delimiter) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, config.Input.Delimiter)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	switch config.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}
