// Package main provides a one-shot utility for identity key generation.
//
// It emits the Ed25519 key pair used to sign and verify identity tokens.
package main

import (
	"os"

	"github.com/louisbranch/pooleddie/internal/platform/config"
	"github.com/louisbranch/pooleddie/internal/tools/identitykey"
)

func main() {
	if err := identitykey.Run(os.Stdout, nil); err != nil {
		config.Exitf("generate identity key: %v", err)
	}
}
