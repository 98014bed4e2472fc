// Command fixmetadata writes the built-in photon and onefunc program addresses into
// target/idl/*.json. Pass "mainnet" to use the mainnet addresses; devnet is used otherwise.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/entangle-labs/idlmeta/config/env"
	"github.com/entangle-labs/idlmeta/config/target"
	"github.com/entangle-labs/idlmeta/engine/commands"
	"github.com/entangle-labs/idlmeta/pkg/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Only env vars are read; the built-in targets are used unless a manifest is given.
	settings, err := env.Load("")
	if err != nil {
		return err
	}

	lvl, err := settings.ParsedLogLevel()
	if err != nil {
		return err
	}

	lggr, err := logger.NewCLI(lvl)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cmd, err := newCommand(lggr, settings)
	if err != nil {
		return err
	}

	return cmd.ExecuteContext(ctx)
}

// newCommand builds the fixmetadata command. Without an argument it always patches the default
// network; IDLMETA_NETWORK is not consulted.
func newCommand(lggr logger.Logger, settings *env.Config) (*cobra.Command, error) {
	pinned := *settings
	pinned.Network = ""

	return commands.NewApplyCommand(commands.Config{
		Logger:         lggr,
		Settings:       &pinned,
		DefaultTargets: target.Defaults(),
	}, "fixmetadata")
}
