package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/entangle-labs/idlmeta/config/env"
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
	settingsPath := os.Getenv("IDLMETA_CONFIG")
	if settingsPath == "" {
		settingsPath = env.DefaultFileName
	}

	settings, err := env.Load(settingsPath)
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

	root, err := commands.NewCommand(commands.Config{
		Logger:   lggr,
		Settings: settings,
	})
	if err != nil {
		return err
	}

	return root.ExecuteContext(ctx)
}
