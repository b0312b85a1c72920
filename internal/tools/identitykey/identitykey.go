// Package identitykey generates the Ed25519 key pair that signs identity tokens.
package identitykey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/louisbranch/pooleddie/internal/platform/config"
)

// Run generates an identity key pair and writes exports.
func Run(out io.Writer, reader io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}
	publicKey, privateKey, err := ed25519.GenerateKey(reader)
	if err != nil {
		return fmt.Errorf("generate identity key: %w", err)
	}
	if _, err := fmt.Fprintf(out, "export %sIDENTITY_PRIVATE_KEY=%s\n", config.EnvPrefix, base64.RawStdEncoding.EncodeToString(privateKey)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "export %sIDENTITY_PUBLIC_KEY=%s\n", config.EnvPrefix, base64.RawStdEncoding.EncodeToString(publicKey)); err != nil {
		return err
	}
	return nil
}
