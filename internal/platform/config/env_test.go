package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int    `env:"TEST_PORT" envDefault:"123"`
	Mode string `env:"TEST_MODE"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_MODE", "unprefixed")
	t.Setenv("POOLED_DIE_TEST_MODE", "prefixed")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Mode != "prefixed" {
		t.Fatalf("mode = %q, want %q", cfg.Mode, "prefixed")
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("POOLED_DIE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLookupTrimsValue(t *testing.T) {
	t.Setenv("POOLED_DIE_TEST_LOOKUP", "  value  ")
	if got := Lookup("TEST_LOOKUP"); got != "value" {
		t.Fatalf("lookup = %q, want %q", got, "value")
	}
	if got := Lookup("TEST_LOOKUP_MISSING"); got != "" {
		t.Fatalf("lookup missing = %q, want empty", got)
	}
}
