// Package die exposes the pooled die engine over gRPC.
package die

import (
	"context"
	"log"
	"strings"

	pooleddiev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/v1"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/platform/grpc/pagination"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"github.com/louisbranch/pooleddie/internal/platform/requestctx"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/engine"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultPoolPageSize = 50
	maxPoolPageSize     = 500
	maxLedgerEntries    = 100
)

// Service implements DieServiceServer over the engine.
type Service struct {
	pooleddiev1.UnimplementedDieServiceServer
	engine *engine.Engine
	admin  string
}

// NewService creates a die service. When admin is set, only that identity
// may initialize the pool.
func NewService(eng *engine.Engine, admin string) *Service {
	return &Service{engine: eng, admin: strings.TrimSpace(admin)}
}

// Initialize creates the pool registry administered by the caller.
func (s *Service) Initialize(ctx context.Context, in *pooleddiev1.InitializeRequest) (*pooleddiev1.InitializeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "initialize request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	caller, err := callerSubject(ctx)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	if s.admin != "" && caller != s.admin {
		return nil, handleDomainError(ctx, domain.Unauthorized(caller))
	}
	pool, err := s.engine.Initialize(ctx, caller, strings.TrimSpace(in.GetRegistryId()))
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &pooleddiev1.InitializeResponse{Pool: poolToWire(pool, "")}, nil
}

// Enlarge appends sources to the pool on behalf of the caller.
func (s *Service) Enlarge(ctx context.Context, in *pooleddiev1.EnlargeRequest) (*pooleddiev1.EnlargeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "enlarge request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	caller, err := callerSubject(ctx)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	sources := make([]domain.SourceID, 0, len(in.GetSources()))
	for _, source := range in.GetSources() {
		sources = append(sources, domain.SourceID(strings.TrimSpace(source)))
	}
	pool, err := s.engine.Enlarge(ctx, caller, sources)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	view := poolToWire(pool, "")
	view.Sources = sourcesToWire(pool.Entries)
	return &pooleddiev1.EnlargeResponse{Pool: view}, nil
}

// CreateRequest opens a roll for the caller.
func (s *Service) CreateRequest(ctx context.Context, in *pooleddiev1.CreateRequestRequest) (*pooleddiev1.CreateRequestResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create request request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	caller, err := callerSubject(ctx)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	record, err := s.engine.CreateRequest(ctx, caller)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &pooleddiev1.CreateRequestResponse{Outcome: outcomeToWire(record)}, nil
}

// SettleOutcome receives an oracle callback. Only oracle identities may call it.
func (s *Service) SettleOutcome(ctx context.Context, in *pooleddiev1.SettleOutcomeRequest) (*pooleddiev1.SettleOutcomeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "settle outcome request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	caller, ok := requestctx.CallerFromContext(ctx)
	if !ok || caller.Role != string(identity.RoleOracle) {
		return nil, handleDomainError(ctx, apperrors.New(apperrors.CodePermissionDenied, "settlement requires an oracle identity"))
	}
	result, err := s.engine.Settle(ctx, domain.SourceID(strings.TrimSpace(in.GetSource())), strings.TrimSpace(in.GetRecordKey()))
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &pooleddiev1.SettleOutcomeResponse{Outcome: outcomeToWire(result.Record), Changed: result.Changed}, nil
}

// Claim consumes the caller's settled roll.
func (s *Service) Claim(ctx context.Context, in *pooleddiev1.ClaimRequest) (*pooleddiev1.ClaimResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "claim request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	caller, err := callerSubject(ctx)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	result, err := s.engine.Claim(ctx, caller)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &pooleddiev1.ClaimResponse{Face: uint32(result.Face), Refund: result.Refund}, nil
}

// GetPool returns the registry and one page of its sources.
func (s *Service) GetPool(ctx context.Context, in *pooleddiev1.GetPoolRequest) (*pooleddiev1.GetPoolResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get pool request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	offset, err := pagination.DecodeOffset(in.GetPageToken())
	if err != nil {
		return nil, handleDomainError(ctx, domain.InvalidArgument(err.Error()))
	}
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultPoolPageSize,
		Max:     maxPoolPageSize,
	})
	pool, err := s.engine.GetPool(ctx)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	start, end, next := pagination.Window(pool.Len(), offset, pageSize)
	view := poolToWire(pool, next)
	view.Sources = sourcesToWire(pool.Entries[start:end])
	return &pooleddiev1.GetPoolResponse{Pool: view}, nil
}

// GetOutcome returns one outcome record.
func (s *Service) GetOutcome(ctx context.Context, in *pooleddiev1.GetOutcomeRequest) (*pooleddiev1.GetOutcomeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get outcome request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	owner, err := subjectOr(ctx, in.GetOwner())
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	record, err := s.engine.GetOutcome(ctx, owner)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &pooleddiev1.GetOutcomeResponse{Outcome: outcomeToWire(record)}, nil
}

// GetAccount returns the ledger position of an identity.
func (s *Service) GetAccount(ctx context.Context, in *pooleddiev1.GetAccountRequest) (*pooleddiev1.GetAccountResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get account request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	identityID, err := subjectOr(ctx, in.GetIdentity())
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	limit := pagination.ClampPageSize(in.GetLimit(), pagination.PageSizeConfig{Default: 20, Max: maxLedgerEntries})
	account, err := s.engine.GetAccount(ctx, identityID, limit)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &pooleddiev1.GetAccountResponse{Account: accountToWire(account)}, nil
}

func (s *Service) ready() error {
	if s == nil || s.engine == nil {
		return status.Error(codes.Internal, "die engine is not configured")
	}
	return nil
}

func callerSubject(ctx context.Context) (string, error) {
	subject := strings.TrimSpace(requestctx.SubjectFromContext(ctx))
	if subject == "" {
		return "", apperrors.New(apperrors.CodeUnauthenticated, "caller identity is required")
	}
	return subject, nil
}

func subjectOr(ctx context.Context, explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, nil
	}
	return callerSubject(ctx)
}

func handleDomainError(ctx context.Context, err error) error {
	if apperrors.CodeOf(err) == apperrors.CodeUnknown {
		log.Printf("die service: %v", err)
	}
	return apperrors.HandleError(err, requestctx.LocaleFromContext(ctx))
}

func poolToWire(pool domain.PoolRegistry, next string) *pooleddiev1.Pool {
	return &pooleddiev1.Pool{
		RegistryId:    pool.RegistryID,
		Admin:         pool.Admin,
		Size:          pool.Size,
		Cursor:        pool.Cursor,
		Deposit:       pool.Deposit,
		NextPageToken: next,
	}
}

func sourcesToWire(entries []domain.SourceID) []string {
	sources := make([]string, 0, len(entries))
	for _, entry := range entries {
		sources = append(sources, string(entry))
	}
	return sources
}

func outcomeToWire(record domain.OutcomeRecord) *pooleddiev1.Outcome {
	view := &pooleddiev1.Outcome{
		Owner:       record.Owner,
		Face:        uint32(record.Face),
		Status:      string(record.Status()),
		BoundSource: string(record.BoundSource),
		Deposit:     record.Deposit,
		RequestedAt: timestamppb.New(record.RequestedAt),
	}
	if !record.SettledAt.IsZero() {
		view.SettledAt = timestamppb.New(record.SettledAt)
	}
	return view
}

func accountToWire(account storage.Account) *pooleddiev1.Account {
	view := &pooleddiev1.Account{
		Identity: account.Identity,
		Balance:  account.Balance,
		Entries:  make([]*pooleddiev1.LedgerEntry, 0, len(account.Entries)),
	}
	for _, entry := range account.Entries {
		view.Entries = append(view.Entries, &pooleddiev1.LedgerEntry{
			Amount:    entry.Amount,
			Reason:    string(entry.Reason),
			Reference: entry.Reference,
			CreatedAt: timestamppb.New(entry.CreatedAt),
		})
	}
	return view
}
