package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/entangle-labs/idlmeta/engine/commands/text"
)

var (
	showShort = "Show the program name, version and address of IDL files"

	showExample = text.Examples(`
		idlmeta show target/idl/photon.json target/idl/onefunc.json
	`)
)

// newShowCmd creates the "show" subcommand.
func newShowCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:     "show FILE...",
		Short:   showShort,
		Example: showExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, cfg, args)
		},
	}
}

func runShow(cmd *cobra.Command, cfg Config, paths []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"File", "Program", "Version", "Address"})

	for _, p := range paths {
		info, err := cfg.Deps.Describe(p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		version := "-"
		if info.Version != nil {
			version = info.Version.String()
		}
		address := info.Address
		if address == "" {
			address = "-"
		}

		table.Append([]string{p, info.Name, version, address})
	}

	table.Render()

	return nil
}
