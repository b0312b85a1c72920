package server

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	oraclev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/oracle/v1"
	pooleddiev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/v1"
	platformgrpc "github.com/louisbranch/pooleddie/internal/platform/grpc"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/die"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/interceptors"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/vrf"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/oracle"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// OracleConfig configures the standalone simulated oracle network.
type OracleConfig struct {
	Addr string
	// Authority controls every source registered at startup.
	Authority    string
	Sources      []string
	FulfillDelay time.Duration
	// DieAddr is where settlement callbacks are delivered.
	DieAddr string
	// CallbackCredentials must present an oracle identity to the die service.
	CallbackCredentials credentials.PerRPCCredentials
	// Verifier authenticates oracle API callers when set. Authenticated
	// callers may only act as their own authority.
	Verifier interceptors.TokenVerifier
}

// OracleServer hosts the oracle gRPC API over a simulated network.
type OracleServer struct {
	rt      *runtime
	network *oracle.Local
}

// NewOracle creates a configured oracle server.
func NewOracle(cfg OracleConfig) (*OracleServer, error) {
	if strings.TrimSpace(cfg.DieAddr) == "" {
		return nil, errors.New("die service address is required")
	}
	if cfg.CallbackCredentials == nil {
		return nil, errors.New("callback credentials are required")
	}
	listener, err := listen(cfg.Addr)
	if err != nil {
		return nil, err
	}
	rt := &runtime{name: "oracle", listener: listener}

	network := oracle.NewLocal(oracle.LocalConfig{
		FulfillDelay: cfg.FulfillDelay,
		Random:       rand.Reader,
		Logf:         log.Printf,
	})
	for _, source := range cfg.Sources {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}
		if err := network.Register(domain.SourceID(source), strings.TrimSpace(cfg.Authority)); err != nil {
			rt.close()
			return nil, fmt.Errorf("register source %s: %w", source, err)
		}
	}

	// The die service may start after the oracle; callbacks retry until it answers.
	dieOpts := append(platformgrpc.DefaultClientDialOptions(),
		grpc.WithPerRPCCredentials(cfg.CallbackCredentials))
	dieConn, err := grpc.NewClient(cfg.DieAddr, dieOpts...)
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("create die client: %w", err)
	}
	rt.closers = append(rt.closers, dieConn.Close)
	network.SetInvoker(die.NewCallbackInvoker(pooleddiev1.NewDieServiceClient(dieConn)))
	rt.background = append(rt.background, network.Run)

	serverOpts := []grpc.ServerOption{grpc.StatsHandler(otelgrpc.NewServerHandler())}
	if cfg.Verifier != nil {
		serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(interceptors.IdentityInterceptor(cfg.Verifier)))
	}
	rt.grpcServer = grpc.NewServer(serverOpts...)
	oraclev1.RegisterOracleServiceServer(rt.grpcServer, vrf.NewService(network))
	rt.health = platformgrpc.RegisterHealth(rt.grpcServer, oraclev1.OracleService_ServiceDesc.ServiceName)
	return &OracleServer{rt: rt, network: network}, nil
}

// Addr returns the listener address for the server.
func (s *OracleServer) Addr() string {
	if s == nil {
		return ""
	}
	return s.rt.addr()
}

// Network returns the simulated network behind the API.
func (s *OracleServer) Network() *oracle.Local {
	if s == nil {
		return nil
	}
	return s.network
}

// Serve starts the gRPC server until context cancellation.
func (s *OracleServer) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	return s.rt.serve(ctx)
}

// Close releases server resources.
func (s *OracleServer) Close() {
	if s == nil {
		return
	}
	s.rt.close()
}

// RunOracle creates and serves an oracle server until context cancellation.
func RunOracle(ctx context.Context, cfg OracleConfig) error {
	server, err := NewOracle(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
