package target

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/entangle-labs/idlmeta/config/network"
)

// Manifest is the YAML representation of a target configuration.
type Manifest struct {
	// A YAML array of targets.
	Targets []Target `yaml:"targets"`
}

// Target describes one IDL file and the program addresses it should carry on each network.
type Target struct {
	// Name is the logical program name, e.g. "photon".
	Name string `yaml:"name"`
	// Path is the IDL file path. Relative paths are resolved against the project root.
	Path string `yaml:"path"`
	// Addresses holds the literal program address per network.
	Addresses map[network.Network]string `yaml:"addresses,omitempty"`
	// Keypairs holds the program keypair file per network. The address is derived from the
	// keypair when no literal address is set for that network.
	Keypairs map[network.Network]string `yaml:"keypairs,omitempty"`
}

// Validate ensures that the target has a name, a path and at least one address source.
func (t *Target) Validate() error {
	if t.Name == "" {
		return errors.New("name is required")
	}

	if t.Path == "" {
		return errors.New("path is required")
	}

	if len(t.Addresses) == 0 && len(t.Keypairs) == 0 {
		return errors.New("at least one address or keypair is required")
	}

	for n, addr := range t.Addresses {
		if addr == "" {
			return fmt.Errorf("address for %s is empty", n)
		}
	}

	for n, kp := range t.Keypairs {
		if kp == "" {
			return fmt.Errorf("keypair for %s is empty", n)
		}
	}

	return nil
}

// Networks returns the networks this target has an address source for, in a stable order.
func (t *Target) Networks() []network.Network {
	var out []network.Network
	for _, n := range network.All() {
		_, hasAddr := t.Addresses[n]
		_, hasKey := t.Keypairs[n]
		if hasAddr || hasKey {
			out = append(out, n)
		}
	}

	return out
}

// Config is a collection of targets keyed by name. Targets keep the order they were first
// declared in; that order is the order they are patched in.
type Config struct {
	targets map[string]Target
	order   []string
}

// NewConfig creates a new config from a slice of targets. A later target overwrites an earlier
// one with the same name and takes over its position.
func NewConfig(targets []Target) *Config {
	c := &Config{
		targets: make(map[string]Target, len(targets)),
	}

	for _, t := range targets {
		c.set(t)
	}

	return c
}

func (c *Config) set(t Target) {
	if c.targets == nil {
		c.targets = make(map[string]Target)
	}
	if _, ok := c.targets[t.Name]; !ok {
		c.order = append(c.order, t.Name)
	}
	c.targets[t.Name] = t
}

// Validate ensures that all targets are valid.
func (c *Config) Validate() error {
	for _, t := range c.Targets() {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("target %q: %w", t.Name, err)
		}
	}

	return nil
}

// Targets returns all targets in declaration order.
func (c *Config) Targets() []Target {
	out := make([]Target, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.targets[name])
	}

	return out
}

// Names returns the target names in declaration order.
func (c *Config) Names() []string {
	return slices.Clone(c.order)
}

// Target retrieves a target by name.
func (c *Config) Target(name string) (Target, error) {
	t, ok := c.targets[name]
	if !ok {
		return Target{}, fmt.Errorf("target %q not found in configuration", name)
	}

	return t, nil
}

// Len returns the number of targets.
func (c *Config) Len() int { return len(c.targets) }

// Merge merges another config into the current config, overwriting targets with the same name.
// An overwritten target keeps its position; new targets are appended in their order in other.
func (c *Config) Merge(other *Config) {
	for _, t := range other.Targets() {
		c.set(t)
	}
}

// MarshalYAML implements the yaml.Marshaler interface.
func (c *Config) MarshalYAML() (any, error) {
	return Manifest{Targets: c.Targets()}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	node := Manifest{}

	if err := value.Decode(&node); err != nil {
		return err
	}

	*c = *NewConfig(node.Targets)

	return nil
}

// Filter reports whether a target should be kept.
type Filter func(Target) bool

// FilterWith returns a new Config holding only the targets that pass every filter.
func (c *Config) FilterWith(filters ...Filter) *Config {
	targets := c.Targets()

	for _, filter := range filters {
		targets = slices.DeleteFunc(targets, func(t Target) bool {
			return !filter(t)
		})
	}

	return NewConfig(targets)
}

// NamesFilter keeps the targets with one of the given names. No names keeps everything.
func NamesFilter(names ...string) Filter {
	return func(t Target) bool {
		return len(names) == 0 || slices.Contains(names, t.Name)
	}
}

// NetworkFilter keeps the targets that have an address source for n.
func NetworkFilter(n network.Network) Filter {
	return func(t Target) bool {
		return slices.Contains(t.Networks(), n)
	}
}

// Load reads the YAML manifests at filePaths and merges them in order into a single Config.
func Load(filePaths []string) (*Config, error) {
	cfg := NewConfig(nil)

	for _, fp := range filePaths {
		data, err := os.ReadFile(fp)
		if err != nil {
			return nil, fmt.Errorf("failed to read targets file: %w", err)
		}

		fileCfg, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal targets YAML %s: %w", fp, err)
		}

		cfg.Merge(fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate targets configuration: %w", err)
	}

	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.targets == nil {
		cfg = *NewConfig(nil)
	}

	return &cfg, nil
}
