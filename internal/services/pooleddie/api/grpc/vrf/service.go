// Package vrf serves the simulated oracle network over gRPC and provides a
// client that implements oracle.Network against it.
package vrf

import (
	"context"
	"strings"

	oraclev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/oracle/v1"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/platform/requestctx"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/oracle"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements OracleServiceServer over a local network.
//
// The authority carried by RequestRandomness and RegisterSource is checked
// against the source, not against the caller. Without the identity
// interceptor any client that can reach the server may act as any
// authority. With it, the authenticated subject must equal the authority
// named in the request.
type Service struct {
	oraclev1.UnimplementedOracleServiceServer
	network *oracle.Local
}

// NewService creates an oracle service.
func NewService(network *oracle.Local) *Service {
	return &Service{network: network}
}

func (s *Service) Authority(ctx context.Context, in *oraclev1.AuthorityRequest) (*oraclev1.AuthorityResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "authority request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	authority, err := s.network.Authority(ctx, sourceID(in.GetSource()))
	if err != nil {
		return nil, apperrors.HandleError(err, requestctx.LocaleFromContext(ctx))
	}
	return &oraclev1.AuthorityResponse{Authority: authority}, nil
}

// RequestRandomness registers the callback and queues a round in one step.
func (s *Service) RequestRandomness(ctx context.Context, in *oraclev1.RequestRandomnessRequest) (*oraclev1.RequestRandomnessResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "request randomness request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in.GetCallback() == nil {
		return nil, status.Error(codes.InvalidArgument, "callback is required")
	}
	authority := strings.TrimSpace(in.GetAuthority())
	if err := authorizeAuthority(ctx, authority); err != nil {
		return nil, apperrors.HandleError(err, requestctx.LocaleFromContext(ctx))
	}
	err := s.network.RequestRandomness(ctx, sourceID(in.GetSource()), authority, callbackFromWire(in.GetCallback()), in.GetEscrow())
	if err != nil {
		return nil, apperrors.HandleError(err, requestctx.LocaleFromContext(ctx))
	}
	return &oraclev1.RequestRandomnessResponse{}, nil
}

func (s *Service) Result(ctx context.Context, in *oraclev1.ResultRequest) (*oraclev1.ResultResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "result request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	payload, err := s.network.Result(ctx, sourceID(in.GetSource()))
	if err != nil {
		return nil, apperrors.HandleError(err, requestctx.LocaleFromContext(ctx))
	}
	return &oraclev1.ResultResponse{Payload: payload[:]}, nil
}

// RegisterSource adds a source controlled by authority to the network.
func (s *Service) RegisterSource(ctx context.Context, in *oraclev1.RegisterSourceRequest) (*oraclev1.RegisterSourceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "register source request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	authority := strings.TrimSpace(in.GetAuthority())
	if err := authorizeAuthority(ctx, authority); err != nil {
		return nil, apperrors.HandleError(err, requestctx.LocaleFromContext(ctx))
	}
	if err := s.network.Register(sourceID(in.GetSource()), authority); err != nil {
		return nil, apperrors.HandleError(err, requestctx.LocaleFromContext(ctx))
	}
	return &oraclev1.RegisterSourceResponse{}, nil
}

// ListSources returns a snapshot of every source.
func (s *Service) ListSources(ctx context.Context, in *oraclev1.ListSourcesRequest) (*oraclev1.ListSourcesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list sources request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	infos := s.network.Sources()
	resp := &oraclev1.ListSourcesResponse{Sources: make([]*oraclev1.SourceInfo, 0, len(infos))}
	for _, info := range infos {
		resp.Sources = append(resp.Sources, &oraclev1.SourceInfo{
			Source:    string(info.Source),
			Authority: info.Authority,
			Pending:   info.Pending,
			HasResult: info.HasResult,
			Escrow:    info.Escrow,
			Requests:  info.Requests,
		})
	}
	return resp, nil
}

func (s *Service) ready() error {
	if s == nil || s.network == nil {
		return status.Error(codes.Internal, "oracle network is not configured")
	}
	return nil
}

// authorizeAuthority binds authority to the authenticated caller when one is
// present.
func authorizeAuthority(ctx context.Context, authority string) error {
	caller, ok := requestctx.CallerFromContext(ctx)
	if !ok || caller.Subject == authority {
		return nil
	}
	return apperrors.WithMetadata(apperrors.CodePermissionDenied, "caller may not act as authority", map[string]string{
		"Authority": authority,
		"Caller":    caller.Subject,
	})
}

func sourceID(raw string) domain.SourceID {
	return domain.SourceID(strings.TrimSpace(raw))
}

func callbackFromWire(cb *oraclev1.Callback) oracle.Callback {
	return oracle.Callback{
		Method:    strings.TrimSpace(cb.GetMethod()),
		RecordKey: strings.TrimSpace(cb.GetRecordKey()),
		Source:    sourceID(cb.GetSource()),
	}
}

func callbackToWire(cb oracle.Callback) *oraclev1.Callback {
	return &oraclev1.Callback{
		Method:    cb.Method,
		RecordKey: cb.RecordKey,
		Source:    string(cb.Source),
	}
}
