package server

import (
	"context"
	"crypto/ed25519"
	"net"
	"path/filepath"
	"testing"
	"time"

	pooleddiev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/v1"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	platformgrpc "github.com/louisbranch/pooleddie/internal/platform/grpc"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/vrf"
	"google.golang.org/grpc"
)

const testRegistry = "registry-1"

type keys struct {
	issuer   identity.Issuer
	verifier identity.Verifier
}

func newKeys(t *testing.T) keys {
	t.Helper()
	public, private, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return keys{
		issuer:   identity.Issuer{Name: "pooled-die", Key: private},
		verifier: identity.Verifier{Issuer: "pooled-die", Key: public},
	}
}

func (k keys) token(t *testing.T, subject string, role identity.Role) string {
	t.Helper()
	token, err := k.issuer.Issue(subject, role)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

type servable interface {
	Serve(context.Context) error
}

func serveInBackground(t *testing.T, srv servable) {
	t.Helper()
	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Errorf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Error("timeout waiting for server shutdown")
		}
	})
}

func dialDie(t *testing.T, addr, token string) pooleddiev1.DieServiceClient {
	t.Helper()
	conn, err := platformgrpc.Dial(context.Background(), addr, pooleddiev1.DieService_ServiceDesc.ServiceName, t.Logf,
		grpc.WithPerRPCCredentials(identity.TokenCredentials{Token: token}))
	if err != nil {
		t.Fatalf("dial die server: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return pooleddiev1.NewDieServiceClient(conn)
}

func rollAndClaim(t *testing.T, admin, player pooleddiev1.DieServiceClient, sources []string) {
	t.Helper()
	ctx := context.Background()
	if _, err := admin.Initialize(ctx, &pooleddiev1.InitializeRequest{RegistryId: testRegistry}); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if _, err := admin.Enlarge(ctx, &pooleddiev1.EnlargeRequest{Sources: sources}); err != nil {
		t.Fatalf("enlarge: %v", err)
	}
	if _, err := player.CreateRequest(ctx, &pooleddiev1.CreateRequestRequest{}); err != nil {
		t.Fatalf("create request: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := player.GetOutcome(ctx, &pooleddiev1.GetOutcomeRequest{})
		if err != nil {
			t.Fatalf("get outcome: %v", err)
		}
		if resp.Outcome.Face != 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timeout waiting for settlement")
		}
		time.Sleep(20 * time.Millisecond)
	}

	claimed, err := player.Claim(ctx, &pooleddiev1.ClaimRequest{})
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed.Face < 1 || claimed.Face > 6 {
		t.Fatalf("face = %d, want 1..6", claimed.Face)
	}
}

func TestServerLocalOracleRoundTrip(t *testing.T) {
	k := newKeys(t)
	srv, err := New(context.Background(), Config{
		Addr:         "127.0.0.1:0",
		DBPath:       filepath.Join(t.TempDir(), "pooleddie.db"),
		Admin:        "admin",
		Verifier:     k.verifier,
		OracleMode:   OracleModeLocal,
		RegistryID:   testRegistry,
		LocalSources: []string{"vrf-a", "vrf-b"},
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	serveInBackground(t, srv)

	admin := dialDie(t, srv.Addr(), k.token(t, "admin", identity.RolePlayer))
	player := dialDie(t, srv.Addr(), k.token(t, "alice", identity.RolePlayer))
	rollAndClaim(t, admin, player, []string{"vrf-a", "vrf-b"})
}

func reserveAddr(t *testing.T) string {
	t.Helper()
	reserved, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := reserved.Addr().String()
	_ = reserved.Close()
	return addr
}

func TestServerRemoteOracleRoundTrip(t *testing.T) {
	k := newKeys(t)
	dieAddr := reserveAddr(t)

	oracleSrv, err := NewOracle(OracleConfig{
		Addr:                "127.0.0.1:0",
		Authority:           testRegistry,
		Sources:             []string{"vrf-a", "vrf-b", "vrf-c"},
		DieAddr:             dieAddr,
		CallbackCredentials: identity.IssuerCredentials{Issuer: k.issuer, Subject: "vrf-network", Role: identity.RoleOracle},
	})
	if err != nil {
		t.Fatalf("new oracle: %v", err)
	}
	serveInBackground(t, oracleSrv)

	dieSrv, err := New(context.Background(), Config{
		Addr:       dieAddr,
		DBPath:     filepath.Join(t.TempDir(), "pooleddie.db"),
		Verifier:   k.verifier,
		OracleMode: OracleModeRemote,
		OracleAddr: oracleSrv.Addr(),
	})
	if err != nil {
		t.Fatalf("new die server: %v", err)
	}
	serveInBackground(t, dieSrv)

	admin := dialDie(t, dieSrv.Addr(), k.token(t, "admin", identity.RolePlayer))
	player := dialDie(t, dieSrv.Addr(), k.token(t, "alice", identity.RolePlayer))
	rollAndClaim(t, admin, player, []string{"vrf-a", "vrf-c"})

	sources := oracleSrv.Network().Sources()
	var requests uint64
	for _, source := range sources {
		requests += source.Requests
	}
	if requests != 1 {
		t.Fatalf("oracle requests = %d, want 1", requests)
	}
}

func TestServerAuthenticatedRemoteOracle(t *testing.T) {
	k := newKeys(t)
	dieAddr := reserveAddr(t)

	oracleSrv, err := NewOracle(OracleConfig{
		Addr:                "127.0.0.1:0",
		Authority:           testRegistry,
		Sources:             []string{"vrf-a"},
		DieAddr:             dieAddr,
		CallbackCredentials: identity.IssuerCredentials{Issuer: k.issuer, Subject: "vrf-network", Role: identity.RoleOracle},
		Verifier:            k.verifier,
	})
	if err != nil {
		t.Fatalf("new oracle: %v", err)
	}
	serveInBackground(t, oracleSrv)

	ctx := context.Background()
	anonymous, err := platformgrpc.Dial(ctx, oracleSrv.Addr(), "", t.Logf)
	if err != nil {
		t.Fatalf("dial oracle: %v", err)
	}
	t.Cleanup(func() { _ = anonymous.Close() })
	_, err = vrf.NewClient(anonymous).Authority(ctx, "vrf-a")
	if !apperrors.IsCode(err, apperrors.CodeUnauthenticated) {
		t.Fatalf("anonymous authority err = %v, want UNAUTHENTICATED", err)
	}

	dieSrv, err := New(ctx, Config{
		Addr:              dieAddr,
		DBPath:            filepath.Join(t.TempDir(), "pooleddie.db"),
		Verifier:          k.verifier,
		OracleMode:        OracleModeRemote,
		OracleAddr:        oracleSrv.Addr(),
		OracleCredentials: identity.IssuerCredentials{Issuer: k.issuer, Subject: testRegistry, Role: identity.RolePlayer},
	})
	if err != nil {
		t.Fatalf("new die server: %v", err)
	}
	serveInBackground(t, dieSrv)

	admin := dialDie(t, dieSrv.Addr(), k.token(t, "admin", identity.RolePlayer))
	player := dialDie(t, dieSrv.Addr(), k.token(t, "alice", identity.RolePlayer))
	rollAndClaim(t, admin, player, []string{"vrf-a"})
}

func TestNewRequiresVerifier(t *testing.T) {
	if _, err := New(context.Background(), Config{Addr: "127.0.0.1:0"}); err == nil {
		t.Fatal("expected error without verifier")
	}
}

func TestNewRejectsUnknownOracleMode(t *testing.T) {
	k := newKeys(t)
	_, err := New(context.Background(), Config{
		Addr:       "127.0.0.1:0",
		DBPath:     filepath.Join(t.TempDir(), "pooleddie.db"),
		Verifier:   k.verifier,
		OracleMode: "carrier-pigeon",
	})
	if err == nil {
		t.Fatal("expected error for unknown oracle mode")
	}
}

func TestNewOracleRequiresCallbackTarget(t *testing.T) {
	if _, err := NewOracle(OracleConfig{Addr: "127.0.0.1:0"}); err == nil {
		t.Fatal("expected error without die address")
	}
	if _, err := NewOracle(OracleConfig{Addr: "127.0.0.1:0", DieAddr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected error without callback credentials")
	}
}
