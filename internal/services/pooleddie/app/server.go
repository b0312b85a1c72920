package server

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	oraclev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/oracle/v1"
	pooleddiev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/v1"
	platformgrpc "github.com/louisbranch/pooleddie/internal/platform/grpc"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/die"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/interceptors"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/vrf"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/engine"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/oracle"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// Oracle modes.
const (
	OracleModeLocal  = "local"
	OracleModeRemote = "remote"
)

// Config configures the pooled die server.
type Config struct {
	Addr     string
	DBPath   string
	Admin    string
	Verifier interceptors.TokenVerifier

	OracleMode string
	OracleAddr string
	// OracleCredentials authenticate calls to a remote oracle as RegistryID.
	OracleCredentials credentials.PerRPCCredentials
	// RegistryID is the authority local sources are registered under.
	RegistryID   string
	LocalSources []string
	FulfillDelay time.Duration

	RentPerByte  int64
	OracleEscrow int64
	SettleRPS    float64
	SettleBurst  int
}

// Server hosts the die gRPC API, its storage, and its oracle network.
type Server struct {
	rt     *runtime
	engine *engine.Engine
	local  *oracle.Local
}

// New creates a configured pooled die server.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.Verifier == nil {
		return nil, errors.New("identity verifier is required")
	}
	listener, err := listen(cfg.Addr)
	if err != nil {
		return nil, err
	}
	rt := &runtime{name: "pooled die", listener: listener}
	fail := func(err error) (*Server, error) {
		rt.close()
		return nil, err
	}

	store, err := openStore(cfg.DBPath)
	if err != nil {
		return fail(err)
	}
	rt.closers = append(rt.closers, store.Close)

	srv := &Server{rt: rt}
	var network oracle.Network
	switch strings.ToLower(strings.TrimSpace(cfg.OracleMode)) {
	case "", OracleModeLocal:
		local, err := newLocalNetwork(cfg.RegistryID, cfg.LocalSources, cfg.FulfillDelay)
		if err != nil {
			return fail(err)
		}
		srv.local = local
		network = local
		rt.background = append(rt.background, local.Run)
	case OracleModeRemote:
		var dialOpts []grpc.DialOption
		if cfg.OracleCredentials != nil {
			dialOpts = append(dialOpts, grpc.WithPerRPCCredentials(cfg.OracleCredentials))
		}
		conn, err := platformgrpc.Dial(ctx, cfg.OracleAddr, oraclev1.OracleService_ServiceDesc.ServiceName, log.Printf, dialOpts...)
		if err != nil {
			return fail(fmt.Errorf("dial oracle %s: %w", cfg.OracleAddr, err))
		}
		rt.closers = append(rt.closers, conn.Close)
		network = vrf.NewClient(conn)
	default:
		return fail(fmt.Errorf("unknown oracle mode %q", cfg.OracleMode))
	}

	eng, err := engine.New(store, network, engine.Config{
		Rent:         engine.RentSchedule{PerByte: cfg.RentPerByte},
		OracleEscrow: cfg.OracleEscrow,
	})
	if err != nil {
		return fail(err)
	}
	srv.engine = eng
	if srv.local != nil {
		srv.local.SetInvoker(eng)
	}

	limiter := interceptors.NewSourceRateLimiter(pooleddiev1.DieService_SettleOutcome_FullMethodName, cfg.SettleRPS, cfg.SettleBurst)
	rt.grpcServer = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.IdentityInterceptor(cfg.Verifier),
			interceptors.AuditInterceptor(store, isHealthMethod),
			limiter.UnaryInterceptor(),
		),
	)
	pooleddiev1.RegisterDieServiceServer(rt.grpcServer, die.NewService(eng, cfg.Admin))
	rt.health = platformgrpc.RegisterHealth(rt.grpcServer, pooleddiev1.DieService_ServiceDesc.ServiceName)
	return srv, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.rt.addr()
}

// Engine returns the engine behind the API.
func (s *Server) Engine() *engine.Engine {
	if s == nil {
		return nil
	}
	return s.engine
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	return s.rt.serve(ctx)
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.rt.close()
}

// Run creates and serves a pooled die server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

func newLocalNetwork(registryID string, sources []string, delay time.Duration) (*oracle.Local, error) {
	local := oracle.NewLocal(oracle.LocalConfig{
		FulfillDelay: delay,
		Random:       rand.Reader,
		Logf:         log.Printf,
	})
	for _, source := range sources {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}
		if err := local.Register(domain.SourceID(source), registryID); err != nil {
			return nil, fmt.Errorf("register local source %s: %w", source, err)
		}
	}
	return local, nil
}

func isHealthMethod(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/grpc.health.v1.Health/")
}

func openStore(path string) (*sqlite.Store, error) {
	if strings.TrimSpace(path) == "" {
		path = filepath.Join("data", "pooleddie.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pooled die sqlite store: %w", err)
	}
	return store, nil
}
