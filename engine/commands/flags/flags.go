// Package flags provides reusable flag helpers for idlmeta commands.
//
// Only flags shared by several commands live here so they are named consistently. Flags used by
// a single command are defined next to that command.
package flags

import (
	"github.com/spf13/cobra"
)

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// MustStringSlice returns the slice value, ignoring the error.
// Safe to use with registered flags where GetStringSlice cannot fail.
func MustStringSlice(s []string, _ error) []string { return s }

// Network adds the --network/-n flag. The value is parsed strictly by the command.
//
// Usage:
//
//	flags.Network(cmd)
//	// later in RunE:
//	n, _ := cmd.Flags().GetString("network")
func Network(cmd *cobra.Command) {
	cmd.Flags().StringP("network", "n", "", "Network to resolve addresses for (mainnet, devnet, testnet, localnet)")
}

// Targets adds the flags selecting where targets are loaded from: --manifest/-m (repeatable),
// --anchor-toml, --root and --only.
func Targets(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("manifest", "m", nil, "Target manifest YAML file, may be repeated (later files win)")
	cmd.Flags().String("anchor-toml", "", "Import targets from the [programs.*] tables of an Anchor.toml")
	cmd.Flags().String("root", "", "Project root for relative paths (default: nearest directory with Anchor.toml)")
	cmd.Flags().StringSlice("only", nil, "Limit the run to the named targets")
}

// Patch adds the --strategy and --indent flags controlling how IDL files are rewritten.
func Patch(cmd *cobra.Command) {
	cmd.Flags().String("strategy", "", "How to write metadata: replace (default) or merge")
	cmd.Flags().Bool("indent", false, "Write indented JSON")
}

// Output adds the --out/-o flag for specifying an output file path.
//
// Usage:
//
//	flags.Output(cmd, "")
//	// later in RunE:
//	outPath, _ := cmd.Flags().GetString("out")
func Output(cmd *cobra.Command, defaultValue string) {
	cmd.Flags().StringP("out", "o", defaultValue, "Output file path")
}
