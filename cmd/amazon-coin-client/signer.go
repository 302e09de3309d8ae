package main

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/term"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
)

// loadSigner reads the purchase key from the environment, or prompts for it
// on a terminal.
func loadSigner() (*ecdsa.PrivateKey, error) {
	if raw := strings.TrimSpace(os.Getenv(constants.PrivateKeyEnv)); raw != "" {
		return parseKey(raw)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.Newf("%s is not set and stdin is not a terminal", constants.PrivateKeyEnv)
	}

	_, _ = fmt.Fprint(os.Stderr, "Private key (hex): ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "key input failed")
	}
	defer func() {
		for i := range raw {
			raw[i] = 0
		}
	}()
	return parseKey(string(raw))
}

func parseKey(raw string) (*ecdsa.PrivateKey, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if raw == "" {
		return nil, errors.New("private key cannot be empty")
	}
	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return key, nil
}
