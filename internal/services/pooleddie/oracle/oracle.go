// Package oracle describes the external verifiable-randomness network the
// die service requests randomness from, and provides an in-process
// simulation of it.
package oracle

import (
	"context"

	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
)

// SettleMethod is the callback target registered for every request.
const SettleMethod = "SettleOutcome"

// Callback is the registration a source invokes once its result is ready.
// RecordKey and Source are the only values trusted when it fires.
type Callback struct {
	Method    string
	RecordKey string
	Source    domain.SourceID
}

// Network is the oracle network as seen by the die service. Mutating calls
// carry the authority acting on the source; the network rejects calls from
// any authority other than the one controlling the source.
type Network interface {
	// Authority returns the identity currently controlling source.
	Authority(ctx context.Context, source domain.SourceID) (string, error)
	// RequestRandomness registers callback on source and queues a new
	// randomness round funded by escrow. On error the source is unchanged,
	// including the callback left by the previous request.
	RequestRandomness(ctx context.Context, source domain.SourceID, authority string, callback Callback, escrow int64) error
	// Result returns the latest published payload for source; all zero until ready.
	Result(ctx context.Context, source domain.SourceID) (domain.Payload, error)
}

// CallbackInvoker delivers a fired callback to its target.
type CallbackInvoker interface {
	InvokeCallback(ctx context.Context, callback Callback) error
}

// InvokerFunc adapts a function to CallbackInvoker.
type InvokerFunc func(ctx context.Context, callback Callback) error

// InvokeCallback implements CallbackInvoker.
func (fn InvokerFunc) InvokeCallback(ctx context.Context, callback Callback) error {
	return fn(ctx, callback)
}
