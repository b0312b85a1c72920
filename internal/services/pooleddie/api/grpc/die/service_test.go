package die

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pooleddiev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/v1"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/api/grpc/interceptors"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/engine"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/oracle"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage/sqlite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const testRegistry = "registry-1"

type testEnv struct {
	client  pooleddiev1.DieServiceClient
	conn    *grpc.ClientConn
	network *oracle.Local
	issuer  identity.Issuer
}

func newTestEnv(t *testing.T, admin string) *testEnv {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "die.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	network := oracle.NewLocal(oracle.LocalConfig{
		Random: bytes.NewReader(bytes.Repeat([]byte{0x0D}, 32*8)),
		Logf:   func(string, ...any) {},
	})
	for _, source := range []domain.SourceID{"vrf-a", "vrf-b", "vrf-c"} {
		if err := network.Register(source, testRegistry); err != nil {
			t.Fatalf("register: %v", err)
		}
	}
	eng, err := engine.New(store, network, engine.Config{})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	public, private, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	verifier := identity.Verifier{Issuer: "pooled-die", Key: public}

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.IdentityInterceptor(verifier)))
	pooleddiev1.RegisterDieServiceServer(server, NewService(eng, admin))
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &testEnv{
		client:  pooleddiev1.NewDieServiceClient(conn),
		conn:    conn,
		network: network,
		issuer:  identity.Issuer{Name: "pooled-die", Key: private},
	}
}

func (e *testEnv) as(t *testing.T, subject string, role identity.Role) grpc.CallOption {
	t.Helper()
	token, err := e.issuer.Issue(subject, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return grpc.PerRPCCredentials(identity.TokenCredentials{Token: token})
}

func (e *testEnv) setupPool(t *testing.T, sources ...string) {
	t.Helper()
	ctx := context.Background()
	if _, err := e.client.Initialize(ctx, &pooleddiev1.InitializeRequest{RegistryId: testRegistry}, e.as(t, "admin", identity.RolePlayer)); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if _, err := e.client.Enlarge(ctx, &pooleddiev1.EnlargeRequest{Sources: sources}, e.as(t, "admin", identity.RolePlayer)); err != nil {
		t.Fatalf("enlarge: %v", err)
	}
}

func requireCode(t *testing.T, err error, want apperrors.Code) {
	t.Helper()
	if got := apperrors.CodeOf(apperrors.FromGRPCError(err)); got != want {
		t.Fatalf("code = %s (err %v), want %s", got, err, want)
	}
}

func zeroDPayload() domain.Payload {
	var p domain.Payload
	p[0] = 0x0D
	return p
}

func TestRollLifecycle(t *testing.T) {
	env := newTestEnv(t, "")
	env.setupPool(t, "vrf-a", "vrf-b")
	ctx := context.Background()
	alice := env.as(t, "alice", identity.RolePlayer)
	oracleCaller := env.as(t, "vrf-network", identity.RoleOracle)

	created, err := env.client.CreateRequest(ctx, &pooleddiev1.CreateRequestRequest{}, alice)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if created.Outcome.BoundSource != "vrf-a" || created.Outcome.Face != 0 || created.Outcome.Status != "requested" {
		t.Fatalf("outcome = %+v", created.Outcome)
	}

	_, err = env.client.Claim(ctx, &pooleddiev1.ClaimRequest{}, alice)
	requireCode(t, err, apperrors.CodeNotYetSettled)

	if err := env.network.PublishResult("vrf-a", zeroDPayload()); err != nil {
		t.Fatalf("publish: %v", err)
	}
	settled, err := env.client.SettleOutcome(ctx, &pooleddiev1.SettleOutcomeRequest{Source: "vrf-a", RecordKey: "alice"}, oracleCaller)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !settled.Changed || settled.Outcome.Face != 2 || settled.Outcome.SettledAt == nil {
		t.Fatalf("settled = %+v", settled.Outcome)
	}

	got, err := env.client.GetOutcome(ctx, &pooleddiev1.GetOutcomeRequest{}, alice)
	if err != nil {
		t.Fatalf("get outcome: %v", err)
	}
	if got.Outcome.Face != 2 || got.Outcome.Status != "settled" {
		t.Fatalf("outcome = %+v", got.Outcome)
	}

	claimed, err := env.client.Claim(ctx, &pooleddiev1.ClaimRequest{}, alice)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed.Face != 2 || claimed.Refund != created.Outcome.Deposit {
		t.Fatalf("claim = %+v", claimed)
	}
	_, err = env.client.Claim(ctx, &pooleddiev1.ClaimRequest{}, alice)
	requireCode(t, err, apperrors.CodeRecordNotFound)
	_, err = env.client.SettleOutcome(ctx, &pooleddiev1.SettleOutcomeRequest{Source: "vrf-a", RecordKey: "alice"}, oracleCaller)
	requireCode(t, err, apperrors.CodeRecordNotFound)

	account, err := env.client.GetAccount(ctx, &pooleddiev1.GetAccountRequest{}, alice)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if account.Account.Identity != "alice" || account.Account.Balance != -engine.DefaultOracleEscrow {
		t.Fatalf("account = %+v", account.Account)
	}
	if len(account.Account.Entries) != 3 || account.Account.Entries[0].Reason != "outcome_refund" {
		t.Fatalf("entries = %+v", account.Account.Entries)
	}
}

func TestSettleOutcomeRequiresOracleRole(t *testing.T) {
	env := newTestEnv(t, "")
	env.setupPool(t, "vrf-a")
	ctx := context.Background()
	alice := env.as(t, "alice", identity.RolePlayer)

	if _, err := env.client.CreateRequest(ctx, &pooleddiev1.CreateRequestRequest{}, alice); err != nil {
		t.Fatalf("create request: %v", err)
	}
	_, err := env.client.SettleOutcome(ctx, &pooleddiev1.SettleOutcomeRequest{Source: "vrf-a", RecordKey: "alice"}, alice)
	requireCode(t, err, apperrors.CodePermissionDenied)
}

func TestSettleOutcomeRejectsSpoofedSource(t *testing.T) {
	env := newTestEnv(t, "")
	env.setupPool(t, "vrf-a", "vrf-b")
	ctx := context.Background()

	if _, err := env.client.CreateRequest(ctx, &pooleddiev1.CreateRequestRequest{}, env.as(t, "alice", identity.RolePlayer)); err != nil {
		t.Fatalf("create request: %v", err)
	}
	if err := env.network.PublishResult("vrf-b", zeroDPayload()); err != nil {
		t.Fatalf("publish: %v", err)
	}
	_, err := env.client.SettleOutcome(ctx, &pooleddiev1.SettleOutcomeRequest{Source: "vrf-b", RecordKey: "alice"}, env.as(t, "vrf-network", identity.RoleOracle))
	requireCode(t, err, apperrors.CodeSourceMismatch)
}

func TestCallsRequireToken(t *testing.T) {
	env := newTestEnv(t, "")
	_, err := env.client.GetPool(context.Background(), &pooleddiev1.GetPoolRequest{})
	requireCode(t, err, apperrors.CodeUnauthenticated)
}

func TestInitializeRestrictedToConfiguredAdmin(t *testing.T) {
	env := newTestEnv(t, "admin")
	_, err := env.client.Initialize(context.Background(), &pooleddiev1.InitializeRequest{RegistryId: testRegistry}, env.as(t, "mallory", identity.RolePlayer))
	requireCode(t, err, apperrors.CodeUnauthorized)

	resp, err := env.client.Initialize(context.Background(), &pooleddiev1.InitializeRequest{RegistryId: testRegistry}, env.as(t, "admin", identity.RolePlayer))
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if resp.Pool.Admin != "admin" || resp.Pool.RegistryId != testRegistry {
		t.Fatalf("pool = %+v", resp.Pool)
	}
}

func TestEnlargeByNonAdmin(t *testing.T) {
	env := newTestEnv(t, "")
	env.setupPool(t, "vrf-a")
	ctx := context.Background()

	_, err := env.client.Enlarge(ctx, &pooleddiev1.EnlargeRequest{Sources: []string{"vrf-b"}}, env.as(t, "mallory", identity.RolePlayer))
	requireCode(t, err, apperrors.CodeUnauthorized)

	pool, err := env.client.GetPool(ctx, &pooleddiev1.GetPoolRequest{}, env.as(t, "mallory", identity.RolePlayer))
	if err != nil {
		t.Fatalf("get pool: %v", err)
	}
	if pool.Pool.Size != 1 || len(pool.Pool.Sources) != 1 {
		t.Fatalf("pool = %+v", pool.Pool)
	}
}

func TestGetPoolPages(t *testing.T) {
	env := newTestEnv(t, "")
	env.setupPool(t, "vrf-a", "vrf-b", "vrf-c")
	ctx := context.Background()
	bob := env.as(t, "bob", identity.RolePlayer)

	var listed []string
	token := ""
	for page := 0; page < 5; page++ {
		resp, err := env.client.GetPool(ctx, &pooleddiev1.GetPoolRequest{PageSize: 2, PageToken: token}, bob)
		if err != nil {
			t.Fatalf("get pool page %d: %v", page, err)
		}
		if resp.Pool.Size != 3 {
			t.Fatalf("size = %d, want 3", resp.Pool.Size)
		}
		listed = append(listed, resp.Pool.Sources...)
		token = resp.Pool.NextPageToken
		if token == "" {
			break
		}
	}
	if strings.Join(listed, ",") != "vrf-a,vrf-b,vrf-c" {
		t.Fatalf("listed = %v", listed)
	}

	_, err := env.client.GetPool(ctx, &pooleddiev1.GetPoolRequest{PageToken: "%%%"}, bob)
	requireCode(t, err, apperrors.CodeInvalidArgument)
}

func TestErrorsAreLocalized(t *testing.T) {
	env := newTestEnv(t, "")
	env.setupPool(t, "vrf-a")
	ctx := metadata.AppendToOutgoingContext(context.Background(), "accept-language", "pt-BR")

	_, err := env.client.Claim(ctx, &pooleddiev1.ClaimRequest{}, env.as(t, "alice", identity.RolePlayer))
	requireCode(t, err, apperrors.CodeRecordNotFound)
	_, message := apperrors.FromGRPCStatus(err)
	if !strings.Contains(message, "alice") || !strings.HasPrefix(message, "Nenhuma") {
		t.Fatalf("message = %q, want Portuguese message naming alice", message)
	}
}

func TestCallbackInvokerSettlesRemotely(t *testing.T) {
	env := newTestEnv(t, "")
	env.setupPool(t, "vrf-a")
	ctx := context.Background()

	oracleToken, err := env.issuer.Issue("vrf-network", identity.RoleOracle)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	invoker := NewCallbackInvoker(pooleddiev1.NewDieServiceClient(env.conn), grpc.PerRPCCredentials(identity.TokenCredentials{Token: oracleToken}))
	env.network.SetInvoker(invoker)

	if _, err := env.client.CreateRequest(ctx, &pooleddiev1.CreateRequestRequest{}, env.as(t, "alice", identity.RolePlayer)); err != nil {
		t.Fatalf("create request: %v", err)
	}
	fulfillCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := env.network.Fulfill(fulfillCtx, "vrf-a"); err != nil {
		t.Fatalf("fulfill: %v", err)
	}
	got, err := env.client.GetOutcome(ctx, &pooleddiev1.GetOutcomeRequest{Owner: "alice"}, env.as(t, "bob", identity.RolePlayer))
	if err != nil {
		t.Fatalf("get outcome: %v", err)
	}
	if got.Outcome.Face != 2 {
		t.Fatalf("face = %d, want 2", got.Outcome.Face)
	}

	err = invoker.InvokeCallback(ctx, oracle.Callback{Method: "Drain", RecordKey: "alice", Source: "vrf-a"})
	requireCode(t, err, apperrors.CodeInvalidArgument)
}
