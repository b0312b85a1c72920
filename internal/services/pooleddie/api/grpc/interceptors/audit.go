package interceptors

import (
	"context"
	"log"
	"time"

	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/platform/requestctx"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/observability/audit"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// AuditInterceptor emits an audit event for each unary gRPC call handled by
// the die service. skip excludes methods such as health checks.
func AuditInterceptor(store storage.AuditStore, skip func(fullMethod string) bool) grpc.UnaryServerInterceptor {
	emitter := audit.NewEmitter(store)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		started := time.Now()
		resp, err := handler(ctx, req)
		if store == nil || (skip != nil && skip(info.FullMethod)) {
			return resp, err
		}

		code := "OK"
		if err != nil {
			domainCode, _ := apperrors.FromGRPCStatus(err)
			code = string(domainCode)
		}

		var traceID, spanID string
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
			spanID = sc.SpanID().String()
		}

		emitErr := emitter.Emit(ctx, storage.AuditEvent{
			Method:     info.FullMethod,
			Code:       code,
			Actor:      requestctx.SubjectFromContext(ctx),
			TraceID:    traceID,
			SpanID:     spanID,
			DurationMS: time.Since(started).Milliseconds(),
		})
		if emitErr != nil {
			log.Printf("audit emit %s: %v", info.FullMethod, emitErr)
		}
		return resp, err
	}
}
