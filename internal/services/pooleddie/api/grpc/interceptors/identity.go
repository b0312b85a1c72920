// Package interceptors holds the unary server interceptors of the die service.
package interceptors

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/platform/errors/i18n"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"github.com/louisbranch/pooleddie/internal/platform/requestctx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	acceptLanguageKey = "accept-language"
	healthServicePath = "/grpc.health.v1.Health/"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (identity.Claims, error)
}

// IdentityInterceptor negotiates the response locale and authenticates the
// bearer token of every call except health checks.
func IdentityInterceptor(verifier TokenVerifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		locale := i18n.MatchLocale(strings.Join(md.Get(acceptLanguageKey), ","))
		ctx = requestctx.WithLocale(ctx, locale)

		if strings.HasPrefix(info.FullMethod, healthServicePath) {
			return handler(ctx, req)
		}
		if verifier == nil {
			return nil, apperrors.HandleError(apperrors.New(apperrors.CodeUnauthenticated, "identity verifier is not configured"), locale)
		}

		var token string
		for _, header := range md.Get(identity.MetadataKey) {
			if value, ok := identity.BearerToken(header); ok {
				token = value
				break
			}
		}
		if token == "" {
			return nil, apperrors.HandleError(apperrors.New(apperrors.CodeUnauthenticated, "bearer token is required"), locale)
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			return nil, apperrors.HandleError(err, locale)
		}
		ctx = requestctx.WithCaller(ctx, requestctx.Caller{Subject: claims.Subject, Role: string(claims.Role)})
		return handler(ctx, req)
	}
}
