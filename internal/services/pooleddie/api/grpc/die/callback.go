package die

import (
	"context"

	pooleddiev1 "github.com/louisbranch/pooleddie/api/gen/go/pooleddie/v1"
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/oracle"
	"google.golang.org/grpc"
)

// CallbackInvoker delivers oracle callbacks to a remote die service through
// SettleOutcome. Calls must carry an oracle identity token, either from the
// connection or from opts.
type CallbackInvoker struct {
	client pooleddiev1.DieServiceClient
	opts   []grpc.CallOption
}

// NewCallbackInvoker wraps client as an oracle.CallbackInvoker.
func NewCallbackInvoker(client pooleddiev1.DieServiceClient, opts ...grpc.CallOption) *CallbackInvoker {
	return &CallbackInvoker{client: client, opts: opts}
}

// InvokeCallback implements oracle.CallbackInvoker. Rejections come back as
// *errors.Error so the oracle can tell them from transport failures.
func (i *CallbackInvoker) InvokeCallback(ctx context.Context, callback oracle.Callback) error {
	if callback.Method != oracle.SettleMethod {
		return domain.InvalidArgument("unsupported callback method " + callback.Method)
	}
	_, err := i.client.SettleOutcome(ctx, &pooleddiev1.SettleOutcomeRequest{
		Source:    string(callback.Source),
		RecordKey: callback.RecordKey,
	}, i.opts...)
	return apperrors.FromGRPCError(err)
}
