package requestctx

import (
	"context"
	"testing"
)

func TestCallerRoundTrip(t *testing.T) {
	ctx := WithCaller(context.Background(), Caller{Subject: "alice", Role: "player"})
	caller, ok := CallerFromContext(ctx)
	if !ok {
		t.Fatal("expected caller in context")
	}
	if caller.Subject != "alice" || caller.Role != "player" {
		t.Fatalf("caller = %+v", caller)
	}
	if got := SubjectFromContext(ctx); got != "alice" {
		t.Fatalf("subject = %q, want alice", got)
	}
}

func TestCallerMissing(t *testing.T) {
	if _, ok := CallerFromContext(context.Background()); ok {
		t.Fatal("expected no caller")
	}
	if _, ok := CallerFromContext(nil); ok {
		t.Fatal("expected no caller for nil context")
	}
	if got := SubjectFromContext(context.Background()); got != "" {
		t.Fatalf("subject = %q, want empty", got)
	}
}

func TestLocaleRoundTrip(t *testing.T) {
	ctx := WithLocale(nil, "pt-BR")
	if got := LocaleFromContext(ctx); got != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", got)
	}
	if got := LocaleFromContext(context.Background()); got != "" {
		t.Fatalf("locale = %q, want empty", got)
	}
}
