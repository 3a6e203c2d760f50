// Package config loads the knapsack runner configuration through viper.
//
// Values come from, in increasing priority: built-in defaults, an optional
// YAML config file, KNAPSACK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. KNAPSACK_PROBLEMS.
const EnvPrefix = "KNAPSACK"

// Backend names accepted by the runner.
const (
	BackendCPU      = "cpu"
	BackendGPU      = "gpu"
	BackendEmulated = "emulated"
)

// Configuration keys.
const (
	KeyBackend     = "backend"
	KeyProblems    = "problems"
	KeyItems       = "items"
	KeyMaxCapacity = "max-capacity"
	KeyMaxWeight   = "max-weight"
	KeyMaxValue    = "max-value"
	KeyWorkers     = "workers"
	KeySeed        = "seed"
	KeyLogLevel    = "log-level"
	KeyShowItems   = "show-items"
	KeyMetrics     = "metrics"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("knapsack/config: invalid configuration")

// Config is the decoded runner configuration.
type Config struct {
	Backend     string `mapstructure:"backend"`
	Problems    int    `mapstructure:"problems"`
	Items       int    `mapstructure:"items"`
	MaxCapacity int    `mapstructure:"max-capacity"`
	MaxWeight   int    `mapstructure:"max-weight"`
	MaxValue    int    `mapstructure:"max-value"`
	Workers     int    `mapstructure:"workers"` // 0 selects runtime.NumCPU.
	Seed        uint64 `mapstructure:"seed"`    // 0 selects a random seed.
	LogLevel    string `mapstructure:"log-level"`
	ShowItems   bool   `mapstructure:"show-items"`
	Metrics     bool   `mapstructure:"metrics"`
}

// SetDefaults installs the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, BackendCPU)
	v.SetDefault(KeyProblems, 100)
	v.SetDefault(KeyItems, 10)
	v.SetDefault(KeyMaxCapacity, 100)
	v.SetDefault(KeyMaxWeight, 40)
	v.SetDefault(KeyMaxValue, 200)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyShowItems, false)
	v.SetDefault(KeyMetrics, false)
}

// NewViper returns a viper instance with defaults and environment binding.
// If file is non-empty it is read as the config file.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}
	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendCPU, BackendGPU, BackendEmulated:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if c.Problems < 0 {
		return fmt.Errorf("%w: problems must be >= 0, got %d", ErrInvalid, c.Problems)
	}
	if c.Items < 0 {
		return fmt.Errorf("%w: items must be >= 0, got %d", ErrInvalid, c.Items)
	}
	if c.MaxCapacity < 1 || c.MaxWeight < 1 || c.MaxValue < 1 {
		return fmt.Errorf("%w: max-capacity, max-weight and max-value must be >= 1", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	return nil
}
