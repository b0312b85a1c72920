// Package pooleddie parses pooled die service flags and launches the service.
package pooleddie

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/pooleddie/internal/platform/cmd"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	server "github.com/louisbranch/pooleddie/internal/services/pooleddie/app"
	"google.golang.org/grpc/credentials"
)

// Config holds pooled die command configuration.
type Config struct {
	Port         int           `env:"PORT" envDefault:"8100"`
	DBPath       string        `env:"DB_PATH" envDefault:"data/pooleddie.db"`
	Admin        string        `env:"ADMIN"`
	RegistryID   string        `env:"REGISTRY_ID" envDefault:"pooled-die-registry"`
	OracleMode   string        `env:"ORACLE_MODE" envDefault:"local"`
	OracleAddr   string        `env:"ORACLE_ADDR" envDefault:"localhost:8101"`
	LocalSources []string      `env:"LOCAL_SOURCES" envSeparator:","`
	FulfillDelay time.Duration `env:"FULFILL_DELAY" envDefault:"1s"`
	RentPerByte  int64         `env:"RENT_PER_BYTE"`
	OracleEscrow int64         `env:"ORACLE_ESCROW"`
	SettleRPS    float64       `env:"SETTLE_RPS" envDefault:"5"`
	SettleBurst  int           `env:"SETTLE_BURST" envDefault:"10"`
	// Issuer and PrivateKey mint the registry token presented to a remote
	// oracle. Calls go out anonymously when PrivateKey is empty.
	Issuer       string        `env:"IDENTITY_ISSUER" envDefault:"pooled-die"`
	PrivateKey   string        `env:"IDENTITY_PRIVATE_KEY"`
	OTelShutdown time.Duration `env:"OTEL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	sources := strings.Join(cfg.LocalSources, ",")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The pooled die gRPC server port")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database")
	fs.StringVar(&cfg.Admin, "admin", cfg.Admin, "Identity allowed to initialize the pool (any caller when empty)")
	fs.StringVar(&cfg.OracleMode, "oracle-mode", cfg.OracleMode, "Oracle network: local or remote")
	fs.StringVar(&cfg.OracleAddr, "oracle-addr", cfg.OracleAddr, "Remote oracle gRPC address")
	fs.StringVar(&sources, "local-sources", sources, "Comma-separated sources of the local oracle network")
	fs.DurationVar(&cfg.FulfillDelay, "fulfill-delay", cfg.FulfillDelay, "Delay before the local oracle fulfills a request")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.LocalSources = splitList(sources)
	if cfg.Port <= 0 {
		return Config{}, fmt.Errorf("port must be positive")
	}
	return cfg, nil
}

// Run starts the pooled die gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	verifier, err := identity.LoadVerifierFromEnv(nil)
	if err != nil {
		return err
	}
	oracleCreds, err := oracleCredentials(cfg)
	if err != nil {
		return err
	}
	options := entrypoint.RunOptions{ShutdownTimeout: cfg.OTelShutdown}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServicePooledDie, options, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			DBPath:            cfg.DBPath,
			Admin:             cfg.Admin,
			Verifier:          verifier,
			OracleMode:        cfg.OracleMode,
			OracleAddr:        cfg.OracleAddr,
			OracleCredentials: oracleCreds,
			RegistryID:        cfg.RegistryID,
			LocalSources:      cfg.LocalSources,
			FulfillDelay:      cfg.FulfillDelay,
			RentPerByte:       cfg.RentPerByte,
			OracleEscrow:      cfg.OracleEscrow,
			SettleRPS:         cfg.SettleRPS,
			SettleBurst:       cfg.SettleBurst,
		})
	})
}

// oracleCredentials signs remote oracle calls as the registry authority.
func oracleCredentials(cfg Config) (credentials.PerRPCCredentials, error) {
	if strings.TrimSpace(cfg.PrivateKey) == "" {
		return nil, nil
	}
	key, err := identity.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}
	return identity.IssuerCredentials{
		Issuer:  identity.Issuer{Name: cfg.Issuer, Key: key},
		Subject: cfg.RegistryID,
		Role:    identity.RolePlayer,
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
