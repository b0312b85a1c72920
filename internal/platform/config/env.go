// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by pooled die commands.
const EnvPrefix = "POOLED_DIE_"

// ParseEnv loads configuration from environment variables.
//
// Struct tags name the variable without EnvPrefix, so `env:"PORT"` reads
// POOLED_DIE_PORT.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Lookup returns the trimmed value of the prefixed environment variable.
func Lookup(name string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + name))
}
