package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"
)

// loadKey returns the cipher key: the contents of --key-file when given,
// cut to at most 32 bytes (a shorter file is returned whole), otherwise a
// passphrase read from the terminal and folded through SHA-256 to 32 bytes.
func loadKey() ([]byte, error) {
	if keyFile != "" {
		b, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, err
		}
		if len(b) > 32 {
			b = b[:32]
		}
		return b, nil
	}

	fmt.Fprint(os.Stderr, "passphrase: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(pw)
	return sum[:], nil
}

// loadIV returns the base IV decoded from --iv-hex (at whatever length the
// hex gives), or a fresh random 16-byte one (reported so decryption is
// possible later).
func loadIV() ([]byte, bool, error) {
	if ivHex != "" {
		iv, err := hex.DecodeString(ivHex)
		if err != nil {
			return nil, false, fmt.Errorf("bad --iv-hex: %w", err)
		}
		return iv, false, nil
	}
	iv := uuid.New()
	return iv[:], true, nil
}
