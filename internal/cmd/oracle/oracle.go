// Package oracle parses simulated oracle network flags and launches it.
package oracle

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/pooleddie/internal/platform/cmd"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/interceptors"
	server "github.com/louisbranch/pooleddie/internal/services/pooleddie/app"
)

// Config holds oracle command configuration.
type Config struct {
	Port         int           `env:"ORACLE_PORT" envDefault:"8101"`
	Authority    string        `env:"REGISTRY_ID" envDefault:"pooled-die-registry"`
	Sources      []string      `env:"ORACLE_SOURCES" envSeparator:","`
	FulfillDelay time.Duration `env:"FULFILL_DELAY" envDefault:"1s"`
	DieAddr      string        `env:"DIE_ADDR" envDefault:"localhost:8100"`
	Subject      string        `env:"ORACLE_SUBJECT" envDefault:"oracle-network"`
	Issuer       string        `env:"IDENTITY_ISSUER" envDefault:"pooled-die"`
	PrivateKey   string        `env:"IDENTITY_PRIVATE_KEY"`
	// RequireAuth verifies callers against IDENTITY_PUBLIC_KEY and binds
	// each request's authority to the caller.
	RequireAuth  bool          `env:"ORACLE_REQUIRE_AUTH"`
	OTelShutdown time.Duration `env:"OTEL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	sources := strings.Join(cfg.Sources, ",")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The oracle gRPC server port")
	fs.StringVar(&cfg.Authority, "authority", cfg.Authority, "Authority controlling the startup sources")
	fs.StringVar(&sources, "sources", sources, "Comma-separated sources registered at startup")
	fs.DurationVar(&cfg.FulfillDelay, "fulfill-delay", cfg.FulfillDelay, "Delay before a request is fulfilled")
	fs.StringVar(&cfg.DieAddr, "die-addr", cfg.DieAddr, "Pooled die gRPC address receiving callbacks")
	fs.BoolVar(&cfg.RequireAuth, "require-auth", cfg.RequireAuth, "Require identity tokens on oracle calls")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Sources = nil
	for _, source := range strings.Split(sources, ",") {
		if source = strings.TrimSpace(source); source != "" {
			cfg.Sources = append(cfg.Sources, source)
		}
	}
	return cfg, nil
}

// Run starts the simulated oracle network service.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.PrivateKey) == "" {
		return fmt.Errorf("IDENTITY_PRIVATE_KEY is required to sign callbacks")
	}
	key, err := identity.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return err
	}
	creds := identity.IssuerCredentials{
		Issuer:  identity.Issuer{Name: cfg.Issuer, Key: key},
		Subject: cfg.Subject,
		Role:    identity.RoleOracle,
	}
	var verifier interceptors.TokenVerifier
	if cfg.RequireAuth {
		loaded, err := identity.LoadVerifierFromEnv(nil)
		if err != nil {
			return err
		}
		verifier = loaded
	}
	options := entrypoint.RunOptions{ShutdownTimeout: cfg.OTelShutdown}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceOracle, options, func(ctx context.Context) error {
		return server.RunOracle(ctx, server.OracleConfig{
			Addr:                fmt.Sprintf(":%d", cfg.Port),
			Authority:           cfg.Authority,
			Sources:             cfg.Sources,
			FulfillDelay:        cfg.FulfillDelay,
			DieAddr:             cfg.DieAddr,
			CallbackCredentials: creds,
			Verifier:            verifier,
		})
	})
}
