package target

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults returns the built-in targets: the photon and onefunc programs with their historical
// devnet and mainnet addresses.
func Defaults() *Config {
	cfg, err := parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded targets: %v", err))
	}

	return cfg
}
