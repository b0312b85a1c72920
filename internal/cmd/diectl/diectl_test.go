package diectl

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"flag"
	"strings"
	"testing"

	pooleddiev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/v1"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type fakeDieClient struct {
	pages      []*pooleddiev1.Pool
	poolTokens []string
	outcome    *pooleddiev1.Outcome
	claimErr   error
	enlarged   []string
	locale     string
}

func (f *fakeDieClient) Initialize(ctx context.Context, in *pooleddiev1.InitializeRequest, _ ...grpc.CallOption) (*pooleddiev1.InitializeResponse, error) {
	return &pooleddiev1.InitializeResponse{Pool: &pooleddiev1.Pool{RegistryId: in.GetRegistryId(), Admin: "admin"}}, nil
}

func (f *fakeDieClient) Enlarge(ctx context.Context, in *pooleddiev1.EnlargeRequest, _ ...grpc.CallOption) (*pooleddiev1.EnlargeResponse, error) {
	f.enlarged = append(f.enlarged, in.Sources...)
	return &pooleddiev1.EnlargeResponse{Pool: &pooleddiev1.Pool{Size: uint32(len(f.enlarged)), Sources: f.enlarged}}, nil
}

func (f *fakeDieClient) CreateRequest(ctx context.Context, _ *pooleddiev1.CreateRequestRequest, _ ...grpc.CallOption) (*pooleddiev1.CreateRequestResponse, error) {
	return &pooleddiev1.CreateRequestResponse{Outcome: f.outcome}, nil
}

func (f *fakeDieClient) SettleOutcome(ctx context.Context, _ *pooleddiev1.SettleOutcomeRequest, _ ...grpc.CallOption) (*pooleddiev1.SettleOutcomeResponse, error) {
	return nil, apperrors.New(apperrors.CodePermissionDenied, "players cannot settle")
}

func (f *fakeDieClient) Claim(ctx context.Context, _ *pooleddiev1.ClaimRequest, _ ...grpc.CallOption) (*pooleddiev1.ClaimResponse, error) {
	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		if values := md.Get("accept-language"); len(values) > 0 {
			f.locale = values[0]
		}
	}
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	return &pooleddiev1.ClaimResponse{Face: 4, Refund: 511}, nil
}

func (f *fakeDieClient) GetPool(ctx context.Context, in *pooleddiev1.GetPoolRequest, _ ...grpc.CallOption) (*pooleddiev1.GetPoolResponse, error) {
	f.poolTokens = append(f.poolTokens, in.PageToken)
	page := f.pages[0]
	f.pages = f.pages[1:]
	return &pooleddiev1.GetPoolResponse{Pool: page}, nil
}

func (f *fakeDieClient) GetOutcome(ctx context.Context, in *pooleddiev1.GetOutcomeRequest, _ ...grpc.CallOption) (*pooleddiev1.GetOutcomeResponse, error) {
	outcome := proto.Clone(f.outcome).(*pooleddiev1.Outcome)
	if in.Owner != "" {
		outcome.Owner = in.Owner
	}
	return &pooleddiev1.GetOutcomeResponse{Outcome: outcome}, nil
}

func (f *fakeDieClient) GetAccount(ctx context.Context, in *pooleddiev1.GetAccountRequest, _ ...grpc.CallOption) (*pooleddiev1.GetAccountResponse, error) {
	return &pooleddiev1.GetAccountResponse{Account: &pooleddiev1.Account{Identity: "alice", Balance: -2511}}, nil
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("diectl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"roll"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "localhost:8100" || cfg.Role != "player" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Command != "roll" || len(cfg.Args) != 0 {
		t.Fatalf("command = %q args = %v", cfg.Command, cfg.Args)
	}
}

func TestParseConfigCommandArgs(t *testing.T) {
	t.Setenv("POOLED_DIE_TOKEN", "env-token")

	fs := flag.NewFlagSet("diectl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", "dice:9000", "-json", "ENLARGE", "vrf-a", "vrf-b"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "dice:9000" || !cfg.JSONOutput || cfg.Token != "env-token" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Command != "enlarge" || len(cfg.Args) != 2 || cfg.Args[1] != "vrf-b" {
		t.Fatalf("command = %q args = %v", cfg.Command, cfg.Args)
	}
}

func TestParseConfigRequiresCommand(t *testing.T) {
	fs := flag.NewFlagSet("diectl", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error without a command")
	}
}

func TestRunTokenMintsVerifiableToken(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	cfg := Config{
		Command:    "token",
		Issuer:     "pooled-die",
		PrivateKey: base64.RawStdEncoding.EncodeToString(priv),
		Subject:    "oracle-network",
		Role:       "oracle",
	}

	var out bytes.Buffer
	if err := Run(t.Context(), cfg, &out); err != nil {
		t.Fatalf("run token: %v", err)
	}
	claims, err := identity.Verifier{Issuer: "pooled-die", Key: pub}.Verify(strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatalf("verify minted token: %v", err)
	}
	if claims.Subject != "oracle-network" || claims.Role != identity.RoleOracle {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestRunTokenValidation(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	key := base64.RawStdEncoding.EncodeToString(priv)

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing key", cfg: Config{Command: "token", Subject: "alice", Role: "player"}},
		{name: "missing subject", cfg: Config{Command: "token", PrivateKey: key, Role: "player"}},
		{name: "unknown role", cfg: Config{Command: "token", PrivateKey: key, Subject: "alice", Role: "dealer"}},
		{name: "malformed key", cfg: Config{Command: "token", PrivateKey: "abc", Subject: "alice", Role: "player"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Run(t.Context(), tt.cfg, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestExecuteRollPrintsOutcome(t *testing.T) {
	client := &fakeDieClient{outcome: &pooleddiev1.Outcome{Owner: "alice", Status: "requested", BoundSource: "vrf-a", Deposit: 511}}

	var out bytes.Buffer
	if err := Execute(t.Context(), client, Config{Command: "roll"}, &out); err != nil {
		t.Fatalf("execute roll: %v", err)
	}
	want := "owner alice status requested face 0 source vrf-a deposit 511\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestExecuteStatusForOtherOwnerAsJSON(t *testing.T) {
	client := &fakeDieClient{outcome: &pooleddiev1.Outcome{Owner: "alice", Status: "settled", Face: 2}}

	var out bytes.Buffer
	if err := Execute(t.Context(), client, Config{Command: "status", Args: []string{"bob"}, JSONOutput: true}, &out); err != nil {
		t.Fatalf("execute status: %v", err)
	}
	var got pooleddiev1.Outcome
	if err := protojson.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.Owner != "bob" || got.Face != 2 || got.Status != "settled" {
		t.Fatalf("outcome = %+v", &got)
	}
}

func TestExecutePoolFollowsPageTokens(t *testing.T) {
	client := &fakeDieClient{pages: []*pooleddiev1.Pool{
		{RegistryId: "registry-1", Size: 3, Sources: []string{"vrf-a", "vrf-b"}, NextPageToken: "2"},
		{RegistryId: "registry-1", Size: 3, Sources: []string{"vrf-c"}},
	}}

	var out bytes.Buffer
	if err := Execute(t.Context(), client, Config{Command: "pool", PageSize: 2}, &out); err != nil {
		t.Fatalf("execute pool: %v", err)
	}
	if len(client.poolTokens) != 2 || client.poolTokens[0] != "" || client.poolTokens[1] != "2" {
		t.Fatalf("page tokens = %v", client.poolTokens)
	}
	for _, source := range []string{"[0] vrf-a", "[1] vrf-b", "[2] vrf-c"} {
		if !strings.Contains(out.String(), source) {
			t.Fatalf("output missing %q:\n%s", source, out.String())
		}
	}
}

func TestExecuteEnlargeSendsSources(t *testing.T) {
	client := &fakeDieClient{}
	if err := Execute(t.Context(), client, Config{Command: "enlarge", Args: []string{"vrf-a", "vrf-b"}}, nil); err != nil {
		t.Fatalf("execute enlarge: %v", err)
	}
	if len(client.enlarged) != 2 || client.enlarged[0] != "vrf-a" {
		t.Fatalf("enlarged = %v", client.enlarged)
	}
}

func TestExecuteSurfacesErrorCode(t *testing.T) {
	claimErr := apperrors.New(apperrors.CodeNotYetSettled, "resultado ainda não liquidado").ToGRPCStatus("pt-BR", "resultado ainda não liquidado")
	client := &fakeDieClient{claimErr: claimErr}

	err := Execute(t.Context(), client, Config{Command: "claim", Locale: "pt-BR"}, nil)
	if err == nil {
		t.Fatal("expected claim error")
	}
	if err.Error() != "NOT_YET_SETTLED: resultado ainda não liquidado" {
		t.Fatalf("error = %q", err.Error())
	}
	if client.locale != "pt-BR" {
		t.Fatalf("accept-language = %q", client.locale)
	}
}

func TestExecuteUsageErrors(t *testing.T) {
	client := &fakeDieClient{}
	for _, cfg := range []Config{
		{Command: "init"},
		{Command: "enlarge"},
		{Command: "shuffle"},
	} {
		if err := Execute(t.Context(), client, cfg, nil); err == nil {
			t.Fatalf("expected usage error for %+v", cfg)
		}
	}
	if err := Execute(t.Context(), nil, Config{Command: "roll"}, nil); err == nil {
		t.Fatal("expected error for nil client")
	}
}
