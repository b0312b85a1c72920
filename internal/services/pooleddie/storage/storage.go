// Package storage defines persistence contracts for pooled die state.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a keyed record is already present.
var ErrAlreadyExists = errors.New("record already exists")

// LedgerReason classifies a resource movement.
type LedgerReason string

const (
	// ReasonRegistryInit charges the admin for the empty registry.
	ReasonRegistryInit LedgerReason = "registry_init"
	// ReasonRegistryGrowth charges the admin for pool enlargement.
	ReasonRegistryGrowth LedgerReason = "registry_growth"
	// ReasonOutcomeDeposit reserves storage for an outcome record.
	ReasonOutcomeDeposit LedgerReason = "outcome_deposit"
	// ReasonOracleEscrow funds the oracle request.
	ReasonOracleEscrow LedgerReason = "oracle_escrow"
	// ReasonOutcomeRefund returns the outcome deposit on claim.
	ReasonOutcomeRefund LedgerReason = "outcome_refund"
)

// LedgerEntry records one charge (negative) or refund (positive).
type LedgerEntry struct {
	ID        string
	Identity  string
	Amount    int64
	Reason    LedgerReason
	Reference string
	CreatedAt time.Time
}

// Account summarizes the ledger for one identity.
type Account struct {
	Identity string
	Balance  int64
	Entries  []LedgerEntry
}

// Tx is the set of operations available inside one serialized transaction.
type Tx interface {
	// GetPool returns the registry singleton or ErrNotFound.
	GetPool(ctx context.Context) (domain.PoolRegistry, error)
	// CreatePool persists a new registry or returns ErrAlreadyExists.
	CreatePool(ctx context.Context, pool domain.PoolRegistry) error
	// SavePool writes cursor, size and deposit and appends entries not yet stored.
	SavePool(ctx context.Context, pool domain.PoolRegistry) error

	// GetOutcome returns the owner's record or ErrNotFound.
	GetOutcome(ctx context.Context, owner string) (domain.OutcomeRecord, error)
	// CreateOutcome inserts a record keyed by owner or returns ErrAlreadyExists.
	CreateOutcome(ctx context.Context, record domain.OutcomeRecord) error
	// UpdateOutcome rewrites face and settled time.
	UpdateOutcome(ctx context.Context, record domain.OutcomeRecord) error
	// CloseOutcome deletes the record, freeing its key, and refunds its
	// deposit to recipient. It returns the record as it was before deletion.
	CloseOutcome(ctx context.Context, owner string, recipient string, now time.Time) (domain.OutcomeRecord, error)

	// AppendLedger records a charge or refund.
	AppendLedger(ctx context.Context, entry LedgerEntry) error
}

// Store runs transactions and serves read-only account queries.
type Store interface {
	// WithTx runs fn in a transaction, committing only when fn returns nil.
	WithTx(ctx context.Context, fn func(Tx) error) error
	// GetAccount returns the ledger summary for identity, newest entries first.
	GetAccount(ctx context.Context, identity string, limit int) (Account, error)
}

// AuditEvent captures one handled RPC for operational review.
type AuditEvent struct {
	ID         string
	Method     string
	Code       string
	Actor      string
	TraceID    string
	SpanID     string
	DurationMS int64
	CreatedAt  time.Time
}

// AuditStore persists audit events.
type AuditStore interface {
	PutAuditEvent(ctx context.Context, event AuditEvent) error
	ListAuditEvents(ctx context.Context, limit int) ([]AuditEvent, error)
}
