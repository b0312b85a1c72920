package interceptors

import (
	"context"
	"strings"
	"sync"

	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"github.com/louisbranch/pooleddie/internal/platform/requestctx"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type sourceGetter interface {
	GetSource() string
}

// SourceRateLimiter throttles calls to one method per oracle source. Only
// callers holding the oracle role get a limiter; other calls pass through
// to the handler, which rejects them.
type SourceRateLimiter struct {
	method string
	limit  rate.Limit
	burst  int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewSourceRateLimiter limits method to rps calls per second per source with
// the given burst. A non-positive rps disables limiting.
func NewSourceRateLimiter(method string, rps float64, burst int) *SourceRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &SourceRateLimiter{
		method:   method,
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether one more call from source may proceed now.
func (l *SourceRateLimiter) Allow(source string) bool {
	if l == nil || l.limit <= 0 {
		return true
	}
	l.mu.Lock()
	limiter, ok := l.limiters[source]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[source] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

// UnaryInterceptor rejects over-limit oracle calls with RESOURCE_EXHAUSTED.
// It must run after IdentityInterceptor.
func (l *SourceRateLimiter) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if l == nil || info.FullMethod != l.method {
			return handler(ctx, req)
		}
		if caller, ok := requestctx.CallerFromContext(ctx); !ok || caller.Role != string(identity.RoleOracle) {
			return handler(ctx, req)
		}
		getter, ok := req.(sourceGetter)
		if !ok {
			return handler(ctx, req)
		}
		source := strings.TrimSpace(getter.GetSource())
		if !l.Allow(source) {
			return nil, status.Errorf(codes.ResourceExhausted, "source %s exceeded its settlement rate", source)
		}
		return handler(ctx, req)
	}
}
