package network

import (
	"fmt"
	"slices"
	"strings"
)

// Network identifies the Solana cluster a program is deployed to.
type Network string

const (
	Mainnet  Network = "mainnet"
	Devnet   Network = "devnet"
	Testnet  Network = "testnet"
	Localnet Network = "localnet"
)

// Default is the network used when none is selected. It is the non-mainnet set the legacy
// fixmetadata script patched without arguments.
const Default = Devnet

// All returns every known network.
func All() []Network {
	return []Network{Mainnet, Devnet, Testnet, Localnet}
}

// Parse returns the Network named by s. Matching is case-insensitive and "mainnet-beta" is
// accepted as an alias for mainnet.
func Parse(s string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	if n == "mainnet-beta" {
		return Mainnet, nil
	}

	if !slices.Contains(All(), n) {
		return "", fmt.Errorf("unknown network %q (must be one of %s)", s, strings.Join(names(), ", "))
	}

	return n, nil
}

// FromArg selects the network from positional command line arguments the way the legacy script
// did: the first argument must be exactly "mainnet" to select Mainnet, anything else (or nothing)
// selects fallback.
func FromArg(args []string, fallback Network) Network {
	if len(args) > 0 && args[0] == string(Mainnet) {
		return Mainnet
	}

	return fallback
}

// IsMainnet reports whether n is the mainnet cluster.
func (n Network) IsMainnet() bool { return n == Mainnet }

// String returns the network name.
func (n Network) String() string { return string(n) }

// UnmarshalText implements encoding.TextUnmarshaler so networks can be used as YAML map keys.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*n = parsed

	return nil
}

func names() []string {
	all := All()
	out := make([]string, 0, len(all))
	for _, n := range all {
		out = append(out, string(n))
	}

	return out
}
