package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entangle-labs/idlmeta/engine/commands/flags"
	"github.com/entangle-labs/idlmeta/engine/commands/text"
)

var (
	patchShort = "Write an address into a single IDL file"

	patchLong = text.LongDesc(`
		Sets metadata.address of one IDL file. By default the whole metadata object is replaced;
		use --strategy merge to keep the other metadata keys.
	`)

	patchExample = text.Examples(`
		# Patch the photon IDL with its devnet address
		idlmeta patch --file target/idl/photon.json --address 3cAFEXstVzff2dXH8PFMgm81h8sQgpdskFGZqqoDgQkJ
	`)
)

type patchFlags struct {
	file    string
	address string
}

// newPatchCmd creates the "patch" subcommand.
func newPatchCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patch",
		Short:   patchShort,
		Long:    patchLong,
		Example: patchExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := patchFlags{
				file:    flags.MustString(cmd.Flags().GetString("file")),
				address: flags.MustString(cmd.Flags().GetString("address")),
			}

			return runPatch(cmd, cfg, f)
		},
	}

	cmd.Flags().StringP("file", "f", "", "IDL file to patch (required)")
	cmd.Flags().StringP("address", "a", "", "Program address to write (required)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("address")

	flags.Patch(cmd)

	return cmd
}

// runPatch executes the patch command logic.
func runPatch(cmd *cobra.Command, cfg Config, f patchFlags) error {
	if f.address == "" {
		return fmt.Errorf("address for %s must not be empty", f.file)
	}

	opts, err := patcherOptions(cmd, cfg)
	if err != nil {
		return err
	}

	if err := cfg.Deps.NewPatcher(opts...).Patch(f.file, f.address); err != nil {
		return fmt.Errorf("error during metadata patch of %s: %w", f.file, err)
	}

	cfg.Logger.Infow("Patched IDL metadata", "path", f.file, "address", f.address)
	cmd.Printf("✅ Patched %s with %s\n", f.file, f.address)

	return nil
}
