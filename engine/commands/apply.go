package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entangle-labs/idlmeta/batch"
	"github.com/entangle-labs/idlmeta/engine/commands/flags"
	"github.com/entangle-labs/idlmeta/engine/commands/text"
)

var (
	applyShort = "Patch every target IDL with its address for a network"

	applyLong = text.LongDesc(`
		Resolves the configured targets for one network and writes each target's address into
		metadata.address of its IDL file. Targets are patched one at a time in declaration order
		and the run stops at the first failure; files patched before the failure keep their new
		metadata.

		The network can be given as a positional argument for compatibility with the fixmetadata
		script: "mainnet" selects mainnet and any other value selects the default network (devnet).
		Use --network for any other network.
	`)
)

// newApplyCmd creates the batch apply command.
func newApplyCmd(cfg Config, use string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [mainnet]",
		Short: applyShort,
		Long:  applyLong,
		Example: text.Examples(fmt.Sprintf(`
			# Patch the devnet addresses
			%[1]s

			# Patch the mainnet addresses
			%[1]s mainnet

			# Use the program ids from Anchor.toml for localnet and write a report
			%[1]s --anchor-toml Anchor.toml --network localnet --out reports/localnet.json
		`, use)),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, cfg, args)
		},
	}

	flags.Network(cmd)
	flags.Targets(cmd)
	flags.Patch(cmd)
	flags.Output(cmd, "")

	return cmd
}

// runApply executes the apply command logic.
func runApply(cmd *cobra.Command, cfg Config, args []string) error {
	n, err := selectNetwork(cmd, cfg, args)
	if err != nil {
		return err
	}

	opts, err := patcherOptions(cmd, cfg)
	if err != nil {
		return err
	}

	jobs, err := resolveJobs(cmd, cfg, n)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(cfg.Logger, cfg.Deps.NewPatcher(opts...))
	report, runErr := runner.Run(cmd.Context(), n, jobs)

	for _, job := range report.Patched {
		cmd.Printf("✅ Patched %s (%s) with %s\n", job.Name, job.Path, job.Address)
	}

	if out := flags.MustString(cmd.Flags().GetString("out")); out != "" {
		if err := cfg.Deps.ReportWriter(out, report); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", out, err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("error during metadata patch for %s: %w", n, runErr)
	}

	return nil
}
