package interceptors

import (
	"context"
	"testing"

	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
	"github.com/louisbranch/pooleddie/internal/platform/identity"
	"github.com/louisbranch/pooleddie/internal/platform/requestctx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakeVerifier struct {
	claims identity.Claims
	err    error
	seen   string
}

func (v *fakeVerifier) Verify(token string) (identity.Claims, error) {
	v.seen = token
	return v.claims, v.err
}

func incoming(pairs ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(pairs...))
}

func captureHandler(captured *context.Context) grpc.UnaryHandler {
	return func(ctx context.Context, req any) (any, error) {
		*captured = ctx
		return "ok", nil
	}
}

func TestIdentityInterceptorSetsCaller(t *testing.T) {
	verifier := &fakeVerifier{claims: identity.Claims{Subject: "alice", Role: identity.RolePlayer}}
	interceptor := IdentityInterceptor(verifier)

	var got context.Context
	ctx := incoming("authorization", "Bearer tok-1", "accept-language", "pt-BR,pt;q=0.9")
	resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/pooleddie.v1.DieService/Claim"}, captureHandler(&got))
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("resp = %v", resp)
	}
	if verifier.seen != "tok-1" {
		t.Fatalf("verified token = %q", verifier.seen)
	}
	caller, ok := requestctx.CallerFromContext(got)
	if !ok || caller.Subject != "alice" || caller.Role != "player" {
		t.Fatalf("caller = %+v, %v", caller, ok)
	}
	if locale := requestctx.LocaleFromContext(got); locale != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", locale)
	}
}

func TestIdentityInterceptorRejectsMissingToken(t *testing.T) {
	interceptor := IdentityInterceptor(&fakeVerifier{})
	var got context.Context
	_, err := interceptor(incoming(), nil, &grpc.UnaryServerInfo{FullMethod: "/pooleddie.v1.DieService/Claim"}, captureHandler(&got))
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %s, want Unauthenticated", status.Code(err))
	}
	if got != nil {
		t.Fatal("handler should not run")
	}
}

func TestIdentityInterceptorRejectsInvalidToken(t *testing.T) {
	verifier := &fakeVerifier{err: apperrors.New(apperrors.CodeUnauthenticated, "token expired")}
	interceptor := IdentityInterceptor(verifier)
	var got context.Context
	_, err := interceptor(incoming("authorization", "Bearer stale"), nil, &grpc.UnaryServerInfo{FullMethod: "/pooleddie.v1.DieService/Claim"}, captureHandler(&got))
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %s, want Unauthenticated", status.Code(err))
	}
	if code, _ := apperrors.FromGRPCStatus(err); code != apperrors.CodeUnauthenticated {
		t.Fatalf("domain code = %s", code)
	}
}

func TestIdentityInterceptorAllowsHealthChecks(t *testing.T) {
	interceptor := IdentityInterceptor(nil)
	var got context.Context
	if _, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, captureHandler(&got)); err != nil {
		t.Fatalf("health check: %v", err)
	}
	if got == nil {
		t.Fatal("expected handler to run")
	}
	if requestctx.LocaleFromContext(got) != "en-US" {
		t.Fatalf("locale = %q, want en-US", requestctx.LocaleFromContext(got))
	}
}

func TestIdentityInterceptorRequiresVerifier(t *testing.T) {
	interceptor := IdentityInterceptor(nil)
	var got context.Context
	_, err := interceptor(incoming("authorization", "Bearer x"), nil, &grpc.UnaryServerInfo{FullMethod: "/pooleddie.v1.DieService/Claim"}, captureHandler(&got))
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %s, want Unauthenticated", status.Code(err))
	}
}
