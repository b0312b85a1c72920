package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage"
)

type fakeAuditStore struct {
	last  storage.AuditEvent
	count int
	err   error
}

func (s *fakeAuditStore) PutAuditEvent(ctx context.Context, evt storage.AuditEvent) error {
	if s.err != nil {
		return s.err
	}
	s.last = evt
	s.count++
	return nil
}

func (s *fakeAuditStore) ListAuditEvents(ctx context.Context, limit int) ([]storage.AuditEvent, error) {
	return []storage.AuditEvent{s.last}, nil
}

func TestEmitterNoopWhenNil(t *testing.T) {
	var emitter *Emitter
	if err := emitter.Emit(context.Background(), storage.AuditEvent{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestEmitterNoopWhenStoreNil(t *testing.T) {
	emitter := NewEmitter(nil)
	if err := emitter.Emit(context.Background(), storage.AuditEvent{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestEmitterAddsTimestamp(t *testing.T) {
	store := &fakeAuditStore{}
	clockTime := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	emitter := &Emitter{store: store, clock: func() time.Time { return clockTime }}

	if err := emitter.Emit(context.Background(), storage.AuditEvent{Method: "/pooleddie.v1.DieService/Claim", Code: "OK"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if store.count != 1 {
		t.Fatalf("expected 1 event, got %d", store.count)
	}
	if !store.last.CreatedAt.Equal(clockTime) {
		t.Fatalf("expected timestamp %v, got %v", clockTime, store.last.CreatedAt)
	}
}

func TestEmitterPreservesTimestamp(t *testing.T) {
	store := &fakeAuditStore{}
	clockTime := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	setTime := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	emitter := &Emitter{store: store, clock: func() time.Time { return clockTime }}

	if err := emitter.Emit(context.Background(), storage.AuditEvent{Method: "m", CreatedAt: setTime}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !store.last.CreatedAt.Equal(setTime) {
		t.Fatalf("expected timestamp %v, got %v", setTime, store.last.CreatedAt)
	}
}

func TestEmitterUsesTimeNowWhenClockNil(t *testing.T) {
	store := &fakeAuditStore{}
	emitter := &Emitter{store: store}

	before := time.Now().UTC()
	if err := emitter.Emit(context.Background(), storage.AuditEvent{Method: "m"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if store.last.CreatedAt.Before(before) {
		t.Fatalf("timestamp %v is before %v", store.last.CreatedAt, before)
	}
}

func TestEmitterReturnsStoreError(t *testing.T) {
	boom := errors.New("boom")
	emitter := NewEmitter(&fakeAuditStore{err: boom})
	if err := emitter.Emit(context.Background(), storage.AuditEvent{Method: "m"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
