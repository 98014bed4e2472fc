// Package commands provides the cobra commands of the idlmeta CLI.
//
//	root, err := commands.NewCommand(commands.Config{
//	    Logger:   lggr,
//	    Settings: settings,
//	})
//	if err != nil {
//	    return err
//	}
//	return root.Execute()
package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entangle-labs/idlmeta/config/env"
	"github.com/entangle-labs/idlmeta/config/target"
	"github.com/entangle-labs/idlmeta/engine/commands/text"
	"github.com/entangle-labs/idlmeta/pkg/logger"
)

var (
	rootShort = "Write deployed program addresses into Anchor IDL files"

	rootLong = text.LongDesc(`
		Rewrites the metadata section of Anchor IDL JSON files so that metadata.address holds the
		program address deployed on the selected network.

		Targets (IDL path plus address per network) are read from YAML manifests, from the
		[programs.*] tables of Anchor.toml, or from the built-in defaults.
	`)
)

// Config holds the configuration for the commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Settings are the loaded tool settings. Flags take precedence. Optional.
	Settings *env.Config

	// DefaultTargets are used when neither --manifest nor --anchor-toml is given. Optional; when
	// nil such a run fails.
	DefaultTargets *target.Config

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	var missing []string

	if c.Logger == nil {
		missing = append(missing, "Logger")
	}

	if len(missing) > 0 {
		return errors.New("commands.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// prepare validates the config and fills in defaults.
func (c *Config) prepare() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Settings == nil {
		c.Settings = &env.Config{}
	}
	c.Deps.applyDefaults()

	return nil
}

// NewCommand creates the idlmeta root command with all subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.prepare(); err != nil {
		return nil, err
	}

	cmd := &cobra.Command{
		Use:           "idlmeta",
		Short:         rootShort,
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newPatchCmd(cfg))
	cmd.AddCommand(newApplyCmd(cfg, "apply"))
	cmd.AddCommand(newTargetsCmd(cfg))
	cmd.AddCommand(newShowCmd(cfg))

	return cmd, nil
}

// NewApplyCommand creates a standalone apply command named use. It backs single purpose binaries
// such as fixmetadata.
func NewApplyCommand(cfg Config, use string) (*cobra.Command, error) {
	if err := cfg.prepare(); err != nil {
		return nil, err
	}

	cmd := newApplyCmd(cfg, use)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return cmd, nil
}
