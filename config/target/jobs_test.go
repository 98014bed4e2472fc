package target

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	sollib "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entangle-labs/idlmeta/config/network"
)

// writeKeypair writes a random Solana keypair in solana-keygen format and returns its path and
// public key.
func writeKeypair(t *testing.T, dir, name string) (string, string) {
	t.Helper()

	privKey, err := sollib.NewRandomPrivateKey()
	require.NoError(t, err)

	ints := make([]int, len(privKey))
	for i, b := range privKey {
		ints[i] = int(b)
	}
	b, err := json.Marshal(ints)
	require.NoError(t, err)

	return writeFile(t, dir, name, string(b)), privKey.PublicKey().String()
}

func Test_Config_Jobs(t *testing.T) {
	t.Parallel()

	cfg := NewConfig([]Target{
		{
			Name: "photon",
			Path: "target/idl/photon.json",
			Addresses: map[network.Network]string{
				network.Mainnet: "PHOTON_MAIN",
				network.Devnet:  "PHOTON_DEV",
			},
			Keypairs: map[network.Network]string{
				network.Devnet:   "unused-keypair.json",
				network.Localnet: "target/deploy/photon-keypair.json",
			},
		},
		{
			Name:      "onefunc",
			Path:      "/abs/onefunc.json",
			Addresses: map[network.Network]string{network.Mainnet: "ONEFUNC_MAIN", network.Devnet: "ONEFUNC_DEV"},
			Keypairs:  map[network.Network]string{network.Localnet: "/keys/onefunc.json"},
		},
	})

	var read []string
	reader := func(path string) (string, error) {
		read = append(read, path)

		return "KP:" + path, nil
	}

	jobs, err := cfg.Jobs(network.Mainnet, WithRootDir("/project"), WithKeypairReader(reader))
	require.NoError(t, err)
	assert.Equal(t, []PatchJob{
		{Name: "photon", Path: filepath.Join("/project", "target/idl/photon.json"), Address: "PHOTON_MAIN"},
		{Name: "onefunc", Path: "/abs/onefunc.json", Address: "ONEFUNC_MAIN"},
	}, jobs)

	// Literal addresses win over keypairs.
	jobs, err = cfg.Jobs(network.Devnet, WithKeypairReader(reader))
	require.NoError(t, err)
	assert.Equal(t, []PatchJob{
		{Name: "photon", Path: "target/idl/photon.json", Address: "PHOTON_DEV"},
		{Name: "onefunc", Path: "/abs/onefunc.json", Address: "ONEFUNC_DEV"},
	}, jobs)
	assert.Empty(t, read)

	jobs, err = cfg.Jobs(network.Localnet, WithRootDir("/project"), WithKeypairReader(reader))
	require.NoError(t, err)
	assert.Equal(t, []PatchJob{
		{
			Name:    "photon",
			Path:    filepath.Join("/project", "target/idl/photon.json"),
			Address: "KP:" + filepath.Join("/project", "target/deploy/photon-keypair.json"),
		},
		{Name: "onefunc", Path: "/abs/onefunc.json", Address: "KP:/keys/onefunc.json"},
	}, jobs)
}

func Test_Config_Jobs_Errors(t *testing.T) {
	t.Parallel()

	cfg := NewConfig([]Target{
		{Name: "photon", Path: "p.json", Addresses: map[network.Network]string{network.Devnet: "P"}},
		{Name: "genome", Path: "g.json", Keypairs: map[network.Network]string{network.Devnet: "g-keypair.json"}},
	})

	_, err := cfg.Jobs(network.Mainnet)
	require.ErrorIs(t, err, ErrNoAddress)
	assert.EqualError(t, err, `target "photon": no address source for network mainnet`)

	_, err = cfg.Jobs(network.Devnet, WithKeypairReader(func(string) (string, error) {
		return "", errors.New("boom")
	}))
	require.EqualError(t, err, `target "genome": boom`)
}

func Test_Config_Jobs_Keypair(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, pubKey := writeKeypair(t, dir, filepath.Join("target", "deploy", "genome-keypair.json"))

	cfg := NewConfig([]Target{
		{
			Name:     "genome",
			Path:     "target/idl/genome.json",
			Keypairs: map[network.Network]string{network.Localnet: "target/deploy/genome-keypair.json"},
		},
	})

	jobs, err := cfg.Jobs(network.Localnet, WithRootDir(dir))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, pubKey, jobs[0].Address)
	assert.Equal(t, filepath.Join(dir, "target", "idl", "genome.json"), jobs[0].Path)
}

func Test_AddressFromKeypair(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, pubKey := writeKeypair(t, dir, "program-keypair.json")

	got, err := AddressFromKeypair(path)
	require.NoError(t, err)
	assert.Equal(t, pubKey, got)

	_, err = AddressFromKeypair(filepath.Join(dir, "missing.json"))
	require.ErrorContains(t, err, "failed to read keypair")

	bad := writeFile(t, dir, "bad.json", `"not a keypair"`)
	_, err = AddressFromKeypair(bad)
	require.ErrorContains(t, err, "failed to read keypair "+bad)
}
