package vrf

import (
	"context"
	"fmt"

	oraclev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/oracle/v1"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/oracle"
	"google.golang.org/grpc"
)

// Client reaches a remote oracle network. It implements oracle.Network and
// returns pooled die failures as *errors.Error.
type Client struct {
	client oraclev1.OracleServiceClient
	opts   []grpc.CallOption
}

var _ oracle.Network = (*Client)(nil)

// NewClient creates a client over conn. opts are applied to every call.
func NewClient(conn grpc.ClientConnInterface, opts ...grpc.CallOption) *Client {
	return &Client{client: oraclev1.NewOracleServiceClient(conn), opts: opts}
}

// Authority implements oracle.Network.
func (c *Client) Authority(ctx context.Context, source domain.SourceID) (string, error) {
	resp, err := c.client.Authority(ctx, &oraclev1.AuthorityRequest{Source: string(source)}, c.opts...)
	if err != nil {
		return "", apperrors.FromGRPCError(err)
	}
	return resp.GetAuthority(), nil
}

// RequestRandomness implements oracle.Network.
func (c *Client) RequestRandomness(ctx context.Context, source domain.SourceID, authority string, callback oracle.Callback, escrow int64) error {
	_, err := c.client.RequestRandomness(ctx, &oraclev1.RequestRandomnessRequest{
		Source:    string(source),
		Authority: authority,
		Callback:  callbackToWire(callback),
		Escrow:    escrow,
	}, c.opts...)
	if err != nil {
		return apperrors.FromGRPCError(err)
	}
	return nil
}

// Result implements oracle.Network.
func (c *Client) Result(ctx context.Context, source domain.SourceID) (domain.Payload, error) {
	resp, err := c.client.Result(ctx, &oraclev1.ResultRequest{Source: string(source)}, c.opts...)
	if err != nil {
		return domain.Payload{}, apperrors.FromGRPCError(err)
	}
	var payload domain.Payload
	if len(resp.GetPayload()) != len(payload) {
		return domain.Payload{}, apperrors.WithMetadata(apperrors.CodeOracleUnavailable,
			fmt.Sprintf("oracle result for %s has %d bytes, want %d", source, len(resp.GetPayload()), len(payload)),
			map[string]string{"Source": string(source)})
	}
	copy(payload[:], resp.GetPayload())
	return payload, nil
}

// RegisterSource adds a source to the remote network.
func (c *Client) RegisterSource(ctx context.Context, source domain.SourceID, authority string) error {
	_, err := c.client.RegisterSource(ctx, &oraclev1.RegisterSourceRequest{Source: string(source), Authority: authority}, c.opts...)
	if err != nil {
		return apperrors.FromGRPCError(err)
	}
	return nil
}

// ListSources returns a snapshot of the remote sources.
func (c *Client) ListSources(ctx context.Context) ([]oracle.SourceInfo, error) {
	resp, err := c.client.ListSources(ctx, &oraclev1.ListSourcesRequest{}, c.opts...)
	if err != nil {
		return nil, apperrors.FromGRPCError(err)
	}
	infos := make([]oracle.SourceInfo, 0, len(resp.GetSources()))
	for _, info := range resp.GetSources() {
		infos = append(infos, oracle.SourceInfo{
			Source:    domain.SourceID(info.GetSource()),
			Authority: info.GetAuthority(),
			Pending:   info.GetPending(),
			HasResult: info.GetHasResult(),
			Escrow:    info.GetEscrow(),
			Requests:  info.GetRequests(),
		})
	}
	return infos, nil
}
