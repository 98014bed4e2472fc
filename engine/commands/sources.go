package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/entangle-labs/idlmeta/config/network"
	"github.com/entangle-labs/idlmeta/config/target"
	"github.com/entangle-labs/idlmeta/engine/commands/flags"
	"github.com/entangle-labs/idlmeta/idl"
)

// targetFlags are the values of the flags.Targets flags, with settings applied for unset flags.
type targetFlags struct {
	manifests  []string
	anchorToml string
	root       string
	only       []string
}

func readTargetFlags(cmd *cobra.Command, cfg Config) targetFlags {
	f := targetFlags{
		manifests:  cfg.Settings.Manifests,
		anchorToml: cfg.Settings.AnchorToml,
		root:       cfg.Settings.Root,
		only:       flags.MustStringSlice(cmd.Flags().GetStringSlice("only")),
	}

	if cmd.Flags().Changed("manifest") {
		f.manifests = flags.MustStringSlice(cmd.Flags().GetStringSlice("manifest"))
	}
	if cmd.Flags().Changed("anchor-toml") {
		f.anchorToml = flags.MustString(cmd.Flags().GetString("anchor-toml"))
	}
	if cmd.Flags().Changed("root") {
		f.root = flags.MustString(cmd.Flags().GetString("root"))
	}

	return f
}

// loadTargets builds the target configuration. Anchor.toml targets are loaded first so that
// manifests can override them.
func loadTargets(cfg Config, f targetFlags) (*target.Config, error) {
	var targets *target.Config

	switch {
	case f.anchorToml == "" && len(f.manifests) == 0:
		if cfg.DefaultTargets == nil {
			return nil, errors.New("no targets configured: pass --manifest or --anchor-toml")
		}
		targets = target.NewConfig(cfg.DefaultTargets.Targets())
	default:
		targets = target.NewConfig(nil)

		if f.anchorToml != "" {
			anchorTargets, skipped, err := target.LoadAnchorToml(f.anchorToml)
			if err != nil {
				return nil, err
			}
			for _, cluster := range skipped {
				cfg.Logger.Warnw("Skipping unknown cluster in Anchor.toml", "cluster", cluster, "path", f.anchorToml)
			}
			targets.Merge(anchorTargets)
		}

		if len(f.manifests) > 0 {
			manifestTargets, err := target.Load(f.manifests)
			if err != nil {
				return nil, err
			}
			targets.Merge(manifestTargets)
		}
	}

	if len(f.only) > 0 {
		for _, name := range f.only {
			if _, err := targets.Target(name); err != nil {
				return nil, err
			}
		}
		targets = targets.FilterWith(target.NamesFilter(f.only...))
	}

	return targets, nil
}

// projectRoot returns the directory relative target paths are resolved against.
func projectRoot(cfg Config, f targetFlags) (string, error) {
	if f.root != "" {
		return f.root, nil
	}

	if f.anchorToml != "" {
		return filepath.Dir(f.anchorToml), nil
	}

	wd, err := cfg.Deps.WorkingDir()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	return target.FindProjectRoot(wd), nil
}

// resolveJobs loads the targets and resolves them into patch jobs for n.
func resolveJobs(cmd *cobra.Command, cfg Config, n network.Network) ([]target.PatchJob, error) {
	f := readTargetFlags(cmd, cfg)

	targets, err := loadTargets(cfg, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load targets: %w", err)
	}

	root, err := projectRoot(cfg, f)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Debugw("Resolving targets", "network", n, "root", root, "targets", targets.Names())

	return targets.Jobs(n, target.WithRootDir(root))
}

// selectNetwork picks the network from the positional argument, the --network flag or the
// settings, in that order. The positional argument follows the legacy rule: only the literal
// "mainnet" selects mainnet.
func selectNetwork(cmd *cobra.Command, cfg Config, args []string) (network.Network, error) {
	flagSet := cmd.Flags().Changed("network")

	if len(args) > 0 {
		if flagSet {
			return "", errors.New("network given both as argument and with --network")
		}

		return network.FromArg(args, network.Default), nil
	}

	if flagSet {
		return network.Parse(flags.MustString(cmd.Flags().GetString("network")))
	}

	return cfg.Settings.ParsedNetwork()
}

// patcherOptions reads the flags.Patch flags, falling back to the settings.
func patcherOptions(cmd *cobra.Command, cfg Config) ([]idl.Option, error) {
	strategy := cfg.Settings.Strategy
	if cmd.Flags().Changed("strategy") {
		strategy = flags.MustString(cmd.Flags().GetString("strategy"))
	}

	s, err := idl.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}

	indent := cfg.Settings.Indent
	if cmd.Flags().Changed("indent") {
		indent = flags.MustBool(cmd.Flags().GetBool("indent"))
	}

	return []idl.Option{idl.WithStrategy(s), idl.WithIndent(indent)}, nil
}
