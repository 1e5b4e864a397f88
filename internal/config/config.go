// Package config provides Viper-based configuration loading for the auto-collector.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultContainerCapacity is the slot count of every storage chest.
const DefaultContainerCapacity = 36

// CollectorConfig holds the toggles consulted by the collection engine.
//
// Flags for additional enclosure or animal kinds default to false so new kinds are opt-in.
type CollectorConfig struct {
	// Enabled is the global switch; when false no enclosure is processed.
	Enabled bool `mapstructure:"enabled"`
	// EnableForCoops enables collection of floor items in coop-type enclosures.
	EnableForCoops bool `mapstructure:"enable_for_coops"`
	// EnableForBarns enables collection of animal produce in barn-type enclosures.
	EnableForBarns bool `mapstructure:"enable_for_barns"`
	// IncludePigs enables collection of produce from pigs housed in barn-type enclosures.
	IncludePigs bool `mapstructure:"include_pigs"`
	// ContainerCapacity is the slot count given to chests built by the world loader.
	ContainerCapacity int `mapstructure:"container_capacity"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig locates the item catalog and collection rule tables.
type ContentConfig struct {
	ItemsDir string `mapstructure:"items_dir"`
	// RulesFile overrides the embedded default collection rules when non-empty.
	RulesFile string `mapstructure:"rules_file"`
}

// SimulationConfig drives the standalone day-cycle host.
type SimulationConfig struct {
	FarmFile    string        `mapstructure:"farm_file"`
	DayInterval time.Duration `mapstructure:"day_interval"`
	StartDay    int           `mapstructure:"start_day"`
}

// Config is the top-level application configuration.
type Config struct {
	Collector  CollectorConfig  `mapstructure:"collector"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Content    ContentConfig    `mapstructure:"content"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateCollector(c.Collector); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCollector(c CollectorConfig) error {
	if c.ContainerCapacity < 1 {
		return fmt.Errorf("collector.container_capacity must be >= 1, got %d", c.ContainerCapacity)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.ItemsDir == "" {
		return errors.New("content.items_dir must not be empty")
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.FarmFile == "" {
		errs = append(errs, "simulation.farm_file must not be empty")
	}
	if s.DayInterval <= 0 {
		errs = append(errs, fmt.Sprintf("simulation.day_interval must be > 0, got %s", s.DayInterval))
	}
	if s.StartDay < 1 {
		errs = append(errs, fmt.Sprintf("simulation.start_day must be >= 1, got %d", s.StartDay))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with AUTOCOLLECT_ prefix
	v.SetEnvPrefix("AUTOCOLLECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration produced when no file overrides anything.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Defaults are well-formed; an unmarshal error here is a programming error.
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config.Default: %v", err))
	}
	return cfg
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("collector.enabled", true)
	v.SetDefault("collector.enable_for_coops", true)
	v.SetDefault("collector.enable_for_barns", true)
	v.SetDefault("collector.include_pigs", false)
	v.SetDefault("collector.container_capacity", DefaultContainerCapacity)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("content.items_dir", "content/items")
	v.SetDefault("content.rules_file", "")

	v.SetDefault("simulation.farm_file", "content/farm.yaml")
	v.SetDefault("simulation.day_interval", "10s")
	v.SetDefault("simulation.start_day", 1)
}
