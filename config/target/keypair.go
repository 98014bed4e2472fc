package target

import (
	"fmt"

	sollib "github.com/gagliardetto/solana-go"
)

// AddressFromKeypair reads a Solana CLI keypair file (a JSON array of 64 bytes, as written by
// solana-keygen and anchor under target/deploy/) and returns its base58 public key.
func AddressFromKeypair(path string) (string, error) {
	privKey, err := sollib.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read keypair %s: %w", path, err)
	}

	return privKey.PublicKey().String(), nil
}
