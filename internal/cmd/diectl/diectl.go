// Package diectl implements the pooled die command-line client.
package diectl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	pooleddiev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/v1"
	entrypoint "github.com/louisbranch/pooleddie/internal/platform/cmd"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	platformgrpc "github.com/louisbranch/pooleddie/internal/platform/grpc"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const usage = `usage: diectl [flags] <command> [args]

commands:
  token                  mint an identity token for -subject and -role
  init <registry-id>     create the pool registry administered by the caller
  enlarge <source>...    append oracle sources to the pool
  roll                   request a new roll for the caller
  status [owner]         show a roll (the caller's by default)
  claim                  claim the caller's settled roll
  pool                   list the pool registry and its sources
  account [identity]     show ledger charges and refunds`

// Config holds diectl configuration.
type Config struct {
	Addr       string        `env:"DIE_ADDR" envDefault:"localhost:8100"`
	Token      string        `env:"TOKEN"`
	Issuer     string        `env:"IDENTITY_ISSUER" envDefault:"pooled-die"`
	PrivateKey string        `env:"IDENTITY_PRIVATE_KEY"`
	Subject    string        `env:"SUBJECT"`
	Role       string        `env:"ROLE" envDefault:"player"`
	Timeout    time.Duration `env:"CLI_TIMEOUT" envDefault:"10s"`
	Locale     string
	JSONOutput bool
	PageSize   int
	Limit      int

	Command string
	Args    []string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "pooled die gRPC address")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "bearer token (minted from the private key when empty)")
	fs.StringVar(&cfg.Subject, "subject", cfg.Subject, "identity to act as when minting tokens")
	fs.StringVar(&cfg.Role, "role", cfg.Role, "role to mint tokens with (player|oracle)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	fs.StringVar(&cfg.Locale, "lang", "", "preferred language for error messages, e.g. pt-BR")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output JSON")
	fs.IntVar(&cfg.PageSize, "page-size", 0, "sources per page for pool")
	fs.IntVar(&cfg.Limit, "limit", 0, "ledger entries for account")
	fs.Usage = func() { fmt.Fprintln(fs.Output(), usage) }
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, errors.New(usage)
	}
	cfg.Command = strings.ToLower(rest[0])
	cfg.Args = rest[1:]
	return cfg, nil
}

// Run executes one diectl command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	if cfg.Command == "token" {
		creds, err := issuerCredentials(cfg)
		if err != nil {
			return err
		}
		token, err := creds.Issuer.Issue(creds.Subject, creds.Role)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, token)
		return err
	}

	creds, err := callCredentials(cfg)
	if err != nil {
		return err
	}
	conn, err := platformgrpc.Dial(ctx, cfg.Addr, pooleddiev1.DieService_ServiceDesc.ServiceName, nil, grpc.WithPerRPCCredentials(creds))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Addr, err)
	}
	defer conn.Close()
	return Execute(ctx, pooleddiev1.NewDieServiceClient(conn), cfg, out)
}

// Execute runs cfg.Command against client.
func Execute(ctx context.Context, client pooleddiev1.DieServiceClient, cfg Config, out io.Writer) error {
	if client == nil {
		return errors.New("die client is required")
	}
	if out == nil {
		out = io.Discard
	}
	if cfg.Locale != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "accept-language", cfg.Locale)
	}

	var (
		result proto.Message
		err    error
	)
	switch cfg.Command {
	case "init":
		if len(cfg.Args) != 1 {
			return errors.New("usage: diectl init <registry-id>")
		}
		var resp *pooleddiev1.InitializeResponse
		resp, err = client.Initialize(ctx, &pooleddiev1.InitializeRequest{RegistryId: cfg.Args[0]})
		if err == nil {
			result = resp.Pool
		}
	case "enlarge":
		if len(cfg.Args) == 0 {
			return errors.New("usage: diectl enlarge <source>...")
		}
		var resp *pooleddiev1.EnlargeResponse
		resp, err = client.Enlarge(ctx, &pooleddiev1.EnlargeRequest{Sources: cfg.Args})
		if err == nil {
			result = resp.Pool
		}
	case "roll":
		var resp *pooleddiev1.CreateRequestResponse
		resp, err = client.CreateRequest(ctx, &pooleddiev1.CreateRequestRequest{})
		if err == nil {
			result = resp.Outcome
		}
	case "status":
		var resp *pooleddiev1.GetOutcomeResponse
		resp, err = client.GetOutcome(ctx, &pooleddiev1.GetOutcomeRequest{Owner: firstArg(cfg.Args)})
		if err == nil {
			result = resp.Outcome
		}
	case "claim":
		var resp *pooleddiev1.ClaimResponse
		resp, err = client.Claim(ctx, &pooleddiev1.ClaimRequest{})
		if err == nil {
			result = resp
		}
	case "pool":
		result, err = listPool(ctx, client, cfg.PageSize)
	case "account":
		var resp *pooleddiev1.GetAccountResponse
		resp, err = client.GetAccount(ctx, &pooleddiev1.GetAccountRequest{Identity: firstArg(cfg.Args), Limit: int32(cfg.Limit)})
		if err == nil {
			result = resp.Account
		}
	default:
		return fmt.Errorf("unknown command %q\n%s", cfg.Command, usage)
	}
	if err != nil {
		return describeError(err)
	}
	if cfg.JSONOutput {
		data, err := jsonOutput.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return printText(out, result)
}

func listPool(ctx context.Context, client pooleddiev1.DieServiceClient, pageSize int) (*pooleddiev1.Pool, error) {
	var (
		pool    *pooleddiev1.Pool
		sources []string
		token   string
	)
	for {
		resp, err := client.GetPool(ctx, &pooleddiev1.GetPoolRequest{PageSize: int32(pageSize), PageToken: token})
		if err != nil {
			return nil, err
		}
		pool = resp.Pool
		sources = append(sources, resp.Pool.Sources...)
		token = resp.Pool.NextPageToken
		if token == "" {
			break
		}
	}
	pool.Sources = sources
	pool.NextPageToken = ""
	return pool, nil
}

// describeError surfaces the error code verbatim with the server's message.
func describeError(err error) error {
	var appErr *apperrors.Error
	if !errors.As(apperrors.FromGRPCError(err), &appErr) {
		return err
	}
	return fmt.Errorf("%s: %s", appErr.Code, appErr.Message)
}

func printText(out io.Writer, result any) error {
	var err error
	switch v := result.(type) {
	case *pooleddiev1.Pool:
		_, err = fmt.Fprintf(out, "registry %s admin %s size %d cursor %d deposit %d\n", v.GetRegistryId(), v.Admin, v.Size, v.Cursor, v.Deposit)
		for i, source := range v.Sources {
			if err != nil {
				break
			}
			_, err = fmt.Fprintf(out, "  [%d] %s\n", i, source)
		}
	case *pooleddiev1.Outcome:
		_, err = fmt.Fprintf(out, "owner %s status %s face %d source %s deposit %d\n", v.Owner, v.Status, v.Face, v.BoundSource, v.Deposit)
	case *pooleddiev1.ClaimResponse:
		_, err = fmt.Fprintf(out, "face %d refund %d\n", v.Face, v.Refund)
	case *pooleddiev1.Account:
		_, err = fmt.Fprintf(out, "identity %s balance %d\n", v.Identity, v.Balance)
		for _, entry := range v.Entries {
			if err != nil {
				break
			}
			_, err = fmt.Fprintf(out, "  %s %+d %s %s\n", entry.GetCreatedAt().AsTime().Format(time.RFC3339), entry.Amount, entry.Reason, entry.Reference)
		}
	default:
		_, err = fmt.Fprintf(out, "%v\n", v)
	}
	return err
}

var jsonOutput = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func callCredentials(cfg Config) (credentials.PerRPCCredentials, error) {
	if token := strings.TrimSpace(cfg.Token); token != "" {
		return identity.TokenCredentials{Token: token}, nil
	}
	return issuerCredentials(cfg)
}

func issuerCredentials(cfg Config) (identity.IssuerCredentials, error) {
	if strings.TrimSpace(cfg.PrivateKey) == "" {
		return identity.IssuerCredentials{}, errors.New("a token or IDENTITY_PRIVATE_KEY is required")
	}
	if strings.TrimSpace(cfg.Subject) == "" {
		return identity.IssuerCredentials{}, errors.New("-subject is required")
	}
	role := identity.Role(strings.TrimSpace(cfg.Role))
	if !role.Valid() {
		return identity.IssuerCredentials{}, fmt.Errorf("unknown role %q", cfg.Role)
	}
	key, err := identity.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return identity.IssuerCredentials{}, err
	}
	return identity.IssuerCredentials{
		Issuer:  identity.Issuer{Name: cfg.Issuer, Key: key},
		Subject: strings.TrimSpace(cfg.Subject),
		Role:    role,
	}, nil
}
