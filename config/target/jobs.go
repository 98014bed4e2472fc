package target

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/entangle-labs/idlmeta/config/network"
)

// ErrNoAddress is returned when a target has neither an address nor a keypair for the selected
// network.
var ErrNoAddress = errors.New("no address source for network")

// PatchJob pairs an IDL file with the address to write into it.
type PatchJob struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Address string `json:"address"`
}

// KeypairReader returns the program address stored in the keypair file at path.
type KeypairReader func(path string) (string, error)

// JobOption configures how jobs are resolved.
type JobOption func(*jobConfig)

type jobConfig struct {
	rootDir     string
	readKeypair KeypairReader
}

// WithRootDir resolves relative IDL and keypair paths against dir.
func WithRootDir(dir string) JobOption {
	return func(c *jobConfig) {
		c.rootDir = dir
	}
}

// WithKeypairReader overrides how keypair files are turned into addresses. The default is
// AddressFromKeypair.
func WithKeypairReader(r KeypairReader) JobOption {
	return func(c *jobConfig) {
		c.readKeypair = r
	}
}

// Jobs resolves one PatchJob per target for network n, in declaration order. A literal address
// takes precedence over a keypair. Resolution fails as a whole if any target lacks an address
// source, so no file is patched for a half-configured network.
func (c *Config) Jobs(n network.Network, opts ...JobOption) ([]PatchJob, error) {
	cfg := &jobConfig{readKeypair: AddressFromKeypair}
	for _, opt := range opts {
		opt(cfg)
	}

	targets := c.Targets()
	jobs := make([]PatchJob, 0, len(targets))
	for _, t := range targets {
		addr, err := cfg.resolveAddress(t, n)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", t.Name, err)
		}

		jobs = append(jobs, PatchJob{
			Name:    t.Name,
			Path:    cfg.resolvePath(t.Path),
			Address: addr,
		})
	}

	return jobs, nil
}

func (c *jobConfig) resolveAddress(t Target, n network.Network) (string, error) {
	if addr, ok := t.Addresses[n]; ok {
		return addr, nil
	}

	if kp, ok := t.Keypairs[n]; ok {
		return c.readKeypair(c.resolvePath(kp))
	}

	return "", fmt.Errorf("%w %s", ErrNoAddress, n)
}

func (c *jobConfig) resolvePath(p string) string {
	if c.rootDir == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.rootDir, p)
}
