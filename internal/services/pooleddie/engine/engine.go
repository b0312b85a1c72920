// Package engine runs the pooled die operations as serialized storage
// transactions against the pool registry, outcome records, and the oracle
// network.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/oracle"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage"
)

const tracerName = "github.com/louisbranch/pooleddie/internal/services/pooleddie/engine"

// DefaultOracleEscrow funds each randomness request when none is configured.
const DefaultOracleEscrow int64 = 2000

// Config tunes resource accounting.
type Config struct {
	Rent         RentSchedule
	OracleEscrow int64
	Now          func() time.Time
}

// Engine executes pool, request, settlement, and claim operations.
type Engine struct {
	store   storage.Store
	network oracle.Network
	rent    RentSchedule
	escrow  int64
	now     func() time.Time
	tracer  trace.Tracer
}

// New creates an engine over store and network.
func New(store storage.Store, network oracle.Network, cfg Config) (*Engine, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if network == nil {
		return nil, errors.New("oracle network is required")
	}
	if cfg.OracleEscrow <= 0 {
		cfg.OracleEscrow = DefaultOracleEscrow
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{
		store:   store,
		network: network,
		rent:    cfg.Rent,
		escrow:  cfg.OracleEscrow,
		now:     cfg.Now,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// ClaimResult is the outcome of a successful claim.
type ClaimResult struct {
	Face   uint8
	Refund int64
}

// SettleResult reports what a settlement callback did.
type SettleResult struct {
	Record domain.OutcomeRecord
	// Changed is false when the oracle payload was not ready yet.
	Changed bool
}

// Initialize creates the pool registry with no sources and charges admin
// the base registry deposit.
func (e *Engine) Initialize(ctx context.Context, admin, registryID string) (domain.PoolRegistry, error) {
	ctx, span := e.tracer.Start(ctx, "engine.Initialize", trace.WithAttributes(attribute.String("pool.admin", admin)))
	defer span.End()

	pool, err := domain.NewPoolRegistry(registryID, admin)
	if err != nil {
		return domain.PoolRegistry{}, endSpan(span, err)
	}
	pool.Deposit = e.rent.RegistryDeposit(0)
	err = e.store.WithTx(ctx, func(tx storage.Tx) error {
		if err := tx.CreatePool(ctx, pool); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return domain.AlreadyInitialized()
			}
			return err
		}
		return tx.AppendLedger(ctx, storage.LedgerEntry{
			Identity:  pool.Admin,
			Amount:    -pool.Deposit,
			Reason:    storage.ReasonRegistryInit,
			Reference: pool.RegistryID,
			CreatedAt: e.now(),
		})
	})
	if err != nil {
		return domain.PoolRegistry{}, endSpan(span, err)
	}
	log.Printf("pool %s initialized by %s", pool.RegistryID, pool.Admin)
	return pool, nil
}

// Enlarge appends sources to the pool. Only the admin may enlarge, and
// every source must be controlled by the registry. The admin is charged
// the difference between the new and the held registry deposit.
func (e *Engine) Enlarge(ctx context.Context, requester string, sources []domain.SourceID) (domain.PoolRegistry, error) {
	ctx, span := e.tracer.Start(ctx, "engine.Enlarge", trace.WithAttributes(
		attribute.String("pool.requester", requester),
		attribute.Int("pool.candidates", len(sources)),
	))
	defer span.End()

	var enlarged domain.PoolRegistry
	err := e.store.WithTx(ctx, func(tx storage.Tx) error {
		pool, err := loadPool(ctx, tx)
		if err != nil {
			return err
		}
		if err := pool.Authorize(requester); err != nil {
			return err
		}
		if err := pool.ValidateCandidates(sources); err != nil {
			return err
		}
		for _, source := range sources {
			authority, err := e.network.Authority(ctx, source)
			if err != nil {
				return err
			}
			if authority != pool.RegistryID {
				return domain.InvalidSourceAuthority(source, authority)
			}
		}

		pool.Append(sources...)
		deposit := e.rent.RegistryDeposit(pool.Len())
		charge := deposit - pool.Deposit
		pool.Deposit = deposit
		if err := tx.SavePool(ctx, pool); err != nil {
			return err
		}
		if charge > 0 {
			if err := tx.AppendLedger(ctx, storage.LedgerEntry{
				Identity:  pool.Admin,
				Amount:    -charge,
				Reason:    storage.ReasonRegistryGrowth,
				Reference: pool.RegistryID,
				CreatedAt: e.now(),
			}); err != nil {
				return err
			}
		}
		enlarged = pool
		return nil
	})
	if err != nil {
		return domain.PoolRegistry{}, endSpan(span, err)
	}
	span.SetAttributes(attribute.Int("pool.size", enlarged.Len()))
	log.Printf("pool %s enlarged by %d sources to %d", enlarged.RegistryID, len(sources), enlarged.Len())
	return enlarged, nil
}

// CreateRequest opens an outcome record for owner bound to the source under
// the cursor, registers the settlement callback, and forwards the request
// to the oracle network. The cursor advances only if every step succeeds.
func (e *Engine) CreateRequest(ctx context.Context, owner string) (domain.OutcomeRecord, error) {
	ctx, span := e.tracer.Start(ctx, "engine.CreateRequest", trace.WithAttributes(attribute.String("outcome.owner", owner)))
	defer span.End()

	owner = strings.TrimSpace(owner)
	if owner == "" {
		return domain.OutcomeRecord{}, endSpan(span, domain.InvalidArgument("owner is required"))
	}

	var created domain.OutcomeRecord
	err := e.store.WithTx(ctx, func(tx storage.Tx) error {
		pool, err := loadPool(ctx, tx)
		if err != nil {
			return err
		}
		if _, err := tx.GetOutcome(ctx, owner); err == nil {
			return domain.DuplicatePendingRequest(owner)
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		source, err := pool.NextSource()
		if err != nil {
			return err
		}
		authority, err := e.network.Authority(ctx, source)
		if err != nil {
			return err
		}
		if authority != pool.RegistryID {
			return domain.SourceAuthorityMismatch(source, authority)
		}

		now := e.now()
		record, err := domain.NewOutcomeRecord(owner, source, e.rent.OutcomeDeposit(), now)
		if err != nil {
			return err
		}
		if err := tx.CreateOutcome(ctx, record); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return domain.DuplicatePendingRequest(owner)
			}
			return err
		}
		for _, entry := range []storage.LedgerEntry{
			{Identity: owner, Amount: -record.Deposit, Reason: storage.ReasonOutcomeDeposit, Reference: string(source), CreatedAt: now},
			{Identity: owner, Amount: -e.escrow, Reason: storage.ReasonOracleEscrow, Reference: string(source), CreatedAt: now},
		} {
			if err := tx.AppendLedger(ctx, entry); err != nil {
				return err
			}
		}

		pool.Advance()
		if err := tx.SavePool(ctx, pool); err != nil {
			return err
		}

		// The oracle call goes last: a rejected request rolls back every
		// write above and leaves the source's previous callback in place.
		callback := oracle.Callback{Method: oracle.SettleMethod, RecordKey: owner, Source: source}
		if err := e.network.RequestRandomness(ctx, source, pool.RegistryID, callback, e.escrow); err != nil {
			return fmt.Errorf("request randomness from %s: %w", source, err)
		}
		created = record
		return nil
	})
	if err != nil {
		return domain.OutcomeRecord{}, endSpan(span, err)
	}
	span.SetAttributes(attribute.String("outcome.source", string(created.BoundSource)))
	return created, nil
}

// Settle handles the oracle callback for recordKey from callbackSource.
// A callback from any source other than the bound one is rejected before
// the payload is read. An all-zero payload is a successful no-op.
func (e *Engine) Settle(ctx context.Context, callbackSource domain.SourceID, recordKey string) (SettleResult, error) {
	ctx, span := e.tracer.Start(ctx, "engine.Settle", trace.WithAttributes(
		attribute.String("outcome.owner", recordKey),
		attribute.String("outcome.source", string(callbackSource)),
	))
	defer span.End()

	var result SettleResult
	err := e.store.WithTx(ctx, func(tx storage.Tx) error {
		record, err := loadOutcome(ctx, tx, recordKey)
		if err != nil {
			return err
		}
		if callbackSource != record.BoundSource {
			return domain.SourceMismatch(record.Owner, callbackSource)
		}
		payload, err := e.network.Result(ctx, callbackSource)
		if err != nil {
			return err
		}
		changed, err := record.Settle(callbackSource, payload, e.now())
		if err != nil {
			return err
		}
		if changed {
			if err := tx.UpdateOutcome(ctx, record); err != nil {
				return err
			}
		}
		result = SettleResult{Record: record, Changed: changed}
		return nil
	})
	if err != nil {
		return SettleResult{}, endSpan(span, err)
	}
	span.SetAttributes(attribute.Bool("outcome.changed", result.Changed))
	if result.Changed {
		log.Printf("outcome %s settled with face %d", result.Record.Owner, result.Record.Face)
	}
	return result, nil
}

// Claim returns the settled face for owner, deletes the record, and refunds
// its deposit. A second claim finds no record.
func (e *Engine) Claim(ctx context.Context, owner string) (ClaimResult, error) {
	ctx, span := e.tracer.Start(ctx, "engine.Claim", trace.WithAttributes(attribute.String("outcome.owner", owner)))
	defer span.End()

	var result ClaimResult
	err := e.store.WithTx(ctx, func(tx storage.Tx) error {
		record, err := loadOutcome(ctx, tx, owner)
		if err != nil {
			return err
		}
		face, err := record.ClaimableFace()
		if err != nil {
			return err
		}
		closed, err := tx.CloseOutcome(ctx, record.Owner, record.Owner, e.now())
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.RecordNotFound(record.Owner)
			}
			return err
		}
		result = ClaimResult{Face: face, Refund: closed.Deposit}
		return nil
	})
	if err != nil {
		return ClaimResult{}, endSpan(span, err)
	}
	span.SetAttributes(attribute.Int("outcome.face", int(result.Face)))
	return result, nil
}

// InvokeCallback delivers an oracle callback to Settle.
func (e *Engine) InvokeCallback(ctx context.Context, callback oracle.Callback) error {
	if callback.Method != oracle.SettleMethod {
		return domain.InvalidArgument("unsupported callback method " + callback.Method)
	}
	_, err := e.Settle(ctx, callback.Source, callback.RecordKey)
	return err
}

// GetPool returns the current pool registry.
func (e *Engine) GetPool(ctx context.Context) (domain.PoolRegistry, error) {
	var pool domain.PoolRegistry
	err := e.store.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		pool, err = loadPool(ctx, tx)
		return err
	})
	return pool, err
}

// GetOutcome returns the outcome record for owner.
func (e *Engine) GetOutcome(ctx context.Context, owner string) (domain.OutcomeRecord, error) {
	var record domain.OutcomeRecord
	err := e.store.WithTx(ctx, func(tx storage.Tx) error {
		var err error
		record, err = loadOutcome(ctx, tx, owner)
		return err
	})
	return record, err
}

// GetAccount returns the ledger position of identity.
func (e *Engine) GetAccount(ctx context.Context, identity string, limit int) (storage.Account, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return storage.Account{}, domain.InvalidArgument("identity is required")
	}
	return e.store.GetAccount(ctx, identity, limit)
}

func loadPool(ctx context.Context, tx storage.Tx) (domain.PoolRegistry, error) {
	pool, err := tx.GetPool(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.PoolRegistry{}, domain.PoolNotInitialized()
		}
		return domain.PoolRegistry{}, err
	}
	return pool, nil
}

func loadOutcome(ctx context.Context, tx storage.Tx, owner string) (domain.OutcomeRecord, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return domain.OutcomeRecord{}, domain.InvalidArgument("record key is required")
	}
	record, err := tx.GetOutcome(ctx, owner)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.OutcomeRecord{}, domain.RecordNotFound(owner)
		}
		return domain.OutcomeRecord{}, err
	}
	return record, nil
}

func endSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
