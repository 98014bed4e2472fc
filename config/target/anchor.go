package target

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/entangle-labs/idlmeta/config/network"
)

// AnchorFileName is the name of the Anchor workspace manifest.
const AnchorFileName = "Anchor.toml"

// anchorManifest holds the parts of Anchor.toml we read.
type anchorManifest struct {
	// Programs maps a cluster name to program entries, e.g. [programs.devnet]. An entry is either
	// an address string or an inline table such as { address = "...", idl = "..." }.
	Programs map[string]map[string]any `toml:"programs"`
}

// IDLPath returns the path anchor build writes the IDL of the named program to.
func IDLPath(program string) string {
	return path.Join("target", "idl", program+".json")
}

// LoadAnchorToml reads the [programs.<cluster>] tables of an Anchor.toml file and returns one
// target per program, ordered by program name. Clusters that are not known networks are skipped
// and returned so callers can report them.
func LoadAnchorToml(filePath string) (*Config, []string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", AnchorFileName, err)
	}

	var m anchorManifest
	if err = toml.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal %s: %w", filePath, err)
	}

	var (
		byName  = make(map[string]Target)
		skipped []string
	)
	for _, cluster := range slices.Sorted(maps.Keys(m.Programs)) {
		n, err := network.Parse(cluster)
		if err != nil {
			skipped = append(skipped, cluster)
			continue
		}

		for name, entry := range m.Programs[cluster] {
			addr, err := programAddress(entry)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid program %q in [programs.%s] of %s: %w", name, cluster, filePath, err)
			}

			t, ok := byName[name]
			if !ok {
				t = Target{
					Name:      name,
					Path:      IDLPath(name),
					Addresses: make(map[network.Network]string),
				}
			}
			t.Addresses[n] = addr
			byName[name] = t
		}
	}

	targets := make([]Target, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		targets = append(targets, byName[name])
	}

	cfg := NewConfig(targets)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid programs in %s: %w", filePath, err)
	}

	return cfg, skipped, nil
}

// programAddress returns the address of a [programs.<cluster>] entry.
func programAddress(entry any) (string, error) {
	switch v := entry.(type) {
	case string:
		return v, nil
	case map[string]any:
		addr, ok := v["address"].(string)
		if !ok {
			return "", errors.New("table has no address string")
		}

		return addr, nil
	default:
		return "", fmt.Errorf("want an address string or a table with an address, got %T", entry)
	}
}
