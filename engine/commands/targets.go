package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/entangle-labs/idlmeta/engine/commands/flags"
	"github.com/entangle-labs/idlmeta/engine/commands/text"
)

var (
	targetsShort = "List the patch jobs a run would apply, without writing anything"

	targetsExample = text.Examples(`
		# List the mainnet jobs from a manifest
		idlmeta targets mainnet --manifest targets.yaml
	`)
)

// newTargetsCmd creates the "targets" subcommand.
func newTargetsCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "targets [mainnet]",
		Short:   targetsShort,
		Example: targetsExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTargets(cmd, cfg, args)
		},
	}

	flags.Network(cmd)
	flags.Targets(cmd)

	return cmd
}

func runTargets(cmd *cobra.Command, cfg Config, args []string) error {
	n, err := selectNetwork(cmd, cfg, args)
	if err != nil {
		return err
	}

	jobs, err := resolveJobs(cmd, cfg, n)
	if err != nil {
		return err
	}

	cmd.Printf("Network: %s\n", n)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Target", "Path", "Address"})
	for _, job := range jobs {
		table.Append([]string{job.Name, job.Path, job.Address})
	}
	table.Render()

	return nil
}
