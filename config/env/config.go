// Package env loads the idlmeta tool settings from an optional YAML file and IDLMETA_*
// environment variables.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/entangle-labs/idlmeta/config/network"
	"github.com/entangle-labs/idlmeta/idl"
)

// DefaultFileName is the settings file looked up in the project root when no path is given.
const DefaultFileName = ".idlmeta.yaml"

// Config holds the settings shared by all commands. Command line flags take precedence over
// these values.
type Config struct {
	Network    string   `mapstructure:"network" yaml:"network"`         // Network to patch for. Empty selects network.Default.
	Manifests  []string `mapstructure:"manifests" yaml:"manifests"`     // Target manifest files, merged in order.
	AnchorToml string   `mapstructure:"anchor_toml" yaml:"anchor_toml"` // Anchor.toml to import targets from.
	Root       string   `mapstructure:"root" yaml:"root"`               // Project root for relative paths. Empty searches for Anchor.toml.
	Strategy   string   `mapstructure:"strategy" yaml:"strategy"`       // Metadata patch strategy: replace or merge.
	Indent     bool     `mapstructure:"indent" yaml:"indent"`           // Write indented JSON.
	LogLevel   string   `mapstructure:"log_level" yaml:"log_level"`     // zap log level.
}

// ParsedNetwork returns the configured network, or network.Default when none is set.
func (c *Config) ParsedNetwork() (network.Network, error) {
	if c.Network == "" {
		return network.Default, nil
	}

	return network.Parse(c.Network)
}

// ParsedStrategy returns the configured patch strategy.
func (c *Config) ParsedStrategy() (idl.Strategy, error) {
	return idl.ParseStrategy(c.Strategy)
}

// ParsedLogLevel returns the configured log level.
func (c *Config) ParsedLogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}

	return lvl, nil
}

// Validate checks that the enumerated settings hold known values.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.ParsedNetwork(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ParsedStrategy(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ParsedLogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Load loads the settings from the file path, falling back to env vars if the file does not
// exist. If the file exists, any env vars that are set will override the values loaded from the
// file. An empty path loads env vars only.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("strategy", string(idl.StrategyReplace))
	v.SetDefault("log_level", zapcore.InfoLevel.String())

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)

		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings %s: %w", filePath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var (
	// envBindings maps each settings key to the environment variables that can provide it. The
	// first variable that is set wins.
	envBindings = map[string][]string{
		"network":     {"IDLMETA_NETWORK"},
		"manifests":   {"IDLMETA_MANIFESTS"},
		"anchor_toml": {"IDLMETA_ANCHOR_TOML"},
		"root":        {"IDLMETA_ROOT"},
		"strategy":    {"IDLMETA_STRATEGY"},
		"indent":      {"IDLMETA_INDENT"},
		"log_level":   {"IDLMETA_LOG_LEVEL", "LOG_LEVEL"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the settings key to the start of the arguments
		inputs := slices.Insert(envs, 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
