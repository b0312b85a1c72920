// Package sqlite provides a SQLite-backed pooled die storage implementation.
//
// The pool registry is a single row (id = 1) plus an ordered pool_sources
// table. Outcomes are keyed by owner so the primary key enforces one record
// per owner, and ledger rows are append-only.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlitemigrate "github.com/louisbranch/pooleddie/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/domain"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store persists pooled die state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var (
	_ storage.Store      = (*Store)(nil)
	_ storage.AuditStore = (*Store)(nil)
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite pooled die store and applies embedded migrations.
func Open(path string) (*Store, error) {
	sqlDB, err := sqlitemigrate.Open(context.Background(), path, migrations.FS, "")
	if err != nil {
		return nil, err
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// WithTx runs fn inside one transaction. The store holds a single
// connection, so transactions never interleave.
func (s *Store) WithTx(ctx context.Context, fn func(storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sqlTx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&tx{sqlTx: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type tx struct {
	sqlTx *sql.Tx
}

func (t *tx) GetPool(ctx context.Context) (domain.PoolRegistry, error) {
	row := t.sqlTx.QueryRowContext(
		ctx,
		`SELECT registry_id, admin, cursor_pos, size, deposit FROM pool_registry WHERE id = 1`,
	)
	var pool domain.PoolRegistry
	if err := row.Scan(&pool.RegistryID, &pool.Admin, &pool.Cursor, &pool.Size, &pool.Deposit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PoolRegistry{}, storage.ErrNotFound
		}
		return domain.PoolRegistry{}, fmt.Errorf("get pool: %w", err)
	}

	rows, err := t.sqlTx.QueryContext(ctx, `SELECT source_id FROM pool_sources ORDER BY position`)
	if err != nil {
		return domain.PoolRegistry{}, fmt.Errorf("list pool sources: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var source string
		if err := rows.Scan(&source); err != nil {
			return domain.PoolRegistry{}, fmt.Errorf("scan pool source: %w", err)
		}
		pool.Entries = append(pool.Entries, domain.SourceID(source))
	}
	if err := rows.Err(); err != nil {
		return domain.PoolRegistry{}, fmt.Errorf("iterate pool sources: %w", err)
	}
	return pool, nil
}

func (t *tx) CreatePool(ctx context.Context, pool domain.PoolRegistry) error {
	now := toMillis(time.Now())
	_, err := t.sqlTx.ExecContext(
		ctx,
		`INSERT INTO pool_registry (id, registry_id, admin, cursor_pos, size, deposit, created_at, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		pool.RegistryID,
		pool.Admin,
		pool.Cursor,
		pool.Size,
		pool.Deposit,
		now,
		now,
	)
	if err != nil {
		if isConstraintError(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create pool: %w", err)
	}
	return t.appendSources(ctx, 0, pool.Entries)
}

func (t *tx) SavePool(ctx context.Context, pool domain.PoolRegistry) error {
	result, err := t.sqlTx.ExecContext(
		ctx,
		`UPDATE pool_registry SET cursor_pos = ?, size = ?, deposit = ?, updated_at = ? WHERE id = 1`,
		pool.Cursor,
		pool.Size,
		pool.Deposit,
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("save pool: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return storage.ErrNotFound
	}

	var stored int
	if err := t.sqlTx.QueryRowContext(ctx, `SELECT COUNT(*) FROM pool_sources`).Scan(&stored); err != nil {
		return fmt.Errorf("count pool sources: %w", err)
	}
	if stored > len(pool.Entries) {
		return fmt.Errorf("pool entries shrank from %d to %d", stored, len(pool.Entries))
	}
	return t.appendSources(ctx, stored, pool.Entries[stored:])
}

func (t *tx) appendSources(ctx context.Context, start int, sources []domain.SourceID) error {
	now := toMillis(time.Now())
	for i, source := range sources {
		if _, err := t.sqlTx.ExecContext(
			ctx,
			`INSERT INTO pool_sources (position, source_id, added_at) VALUES (?, ?, ?)`,
			start+i,
			string(source),
			now,
		); err != nil {
			if isConstraintError(err) {
				return fmt.Errorf("append source %s: %w", source, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("append source %s: %w", source, err)
		}
	}
	return nil
}

func (t *tx) GetOutcome(ctx context.Context, owner string) (domain.OutcomeRecord, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return domain.OutcomeRecord{}, fmt.Errorf("owner is required")
	}
	row := t.sqlTx.QueryRowContext(
		ctx,
		`SELECT owner, face, bound_source, deposit, requested_at, settled_at
		 FROM outcomes WHERE owner = ?`,
		owner,
	)
	var (
		record      domain.OutcomeRecord
		boundSource string
		requestedAt int64
		settledAt   sql.NullInt64
	)
	if err := row.Scan(&record.Owner, &record.Face, &boundSource, &record.Deposit, &requestedAt, &settledAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.OutcomeRecord{}, storage.ErrNotFound
		}
		return domain.OutcomeRecord{}, fmt.Errorf("get outcome: %w", err)
	}
	record.BoundSource = domain.SourceID(boundSource)
	record.RequestedAt = fromMillis(requestedAt)
	if settledAt.Valid {
		record.SettledAt = fromMillis(settledAt.Int64)
	}
	return record, nil
}

func (t *tx) CreateOutcome(ctx context.Context, record domain.OutcomeRecord) error {
	_, err := t.sqlTx.ExecContext(
		ctx,
		`INSERT INTO outcomes (owner, face, bound_source, deposit, requested_at, settled_at)
		 VALUES (?, ?, ?, ?, ?, NULL)`,
		record.Owner,
		record.Face,
		string(record.BoundSource),
		record.Deposit,
		toMillis(record.RequestedAt),
	)
	if err != nil {
		if isConstraintError(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create outcome: %w", err)
	}
	return nil
}

func (t *tx) UpdateOutcome(ctx context.Context, record domain.OutcomeRecord) error {
	var settledAt sql.NullInt64
	if !record.SettledAt.IsZero() {
		settledAt = sql.NullInt64{Int64: toMillis(record.SettledAt), Valid: true}
	}
	result, err := t.sqlTx.ExecContext(
		ctx,
		`UPDATE outcomes SET face = ?, settled_at = ? WHERE owner = ?`,
		record.Face,
		settledAt,
		record.Owner,
	)
	if err != nil {
		return fmt.Errorf("update outcome: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (t *tx) CloseOutcome(ctx context.Context, owner string, recipient string, now time.Time) (domain.OutcomeRecord, error) {
	record, err := t.GetOutcome(ctx, owner)
	if err != nil {
		return domain.OutcomeRecord{}, err
	}
	if _, err := t.sqlTx.ExecContext(ctx, `DELETE FROM outcomes WHERE owner = ?`, record.Owner); err != nil {
		return domain.OutcomeRecord{}, fmt.Errorf("close outcome: %w", err)
	}
	if record.Deposit != 0 {
		if err := t.AppendLedger(ctx, storage.LedgerEntry{
			Identity:  recipient,
			Amount:    record.Deposit,
			Reason:    storage.ReasonOutcomeRefund,
			Reference: record.Owner,
			CreatedAt: now,
		}); err != nil {
			return domain.OutcomeRecord{}, err
		}
	}
	return record, nil
}

func (t *tx) AppendLedger(ctx context.Context, entry storage.LedgerEntry) error {
	if strings.TrimSpace(entry.Identity) == "" {
		return fmt.Errorf("ledger identity is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := t.sqlTx.ExecContext(
		ctx,
		`INSERT INTO ledger_entries (id, identity, amount, reason, reference, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Identity,
		entry.Amount,
		string(entry.Reason),
		entry.Reference,
		toMillis(entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// GetAccount returns the balance for identity and up to limit recent entries.
func (s *Store) GetAccount(ctx context.Context, identity string, limit int) (storage.Account, error) {
	if err := ctx.Err(); err != nil {
		return storage.Account{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Account{}, fmt.Errorf("storage is not configured")
	}
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return storage.Account{}, fmt.Errorf("identity is required")
	}
	if limit <= 0 {
		limit = 20
	}

	account := storage.Account{Identity: identity}
	if err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE identity = ?`,
		identity,
	).Scan(&account.Balance); err != nil {
		return storage.Account{}, fmt.Errorf("sum ledger: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, identity, amount, reason, reference, created_at
		 FROM ledger_entries
		 WHERE identity = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		identity,
		limit,
	)
	if err != nil {
		return storage.Account{}, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			entry     storage.LedgerEntry
			reason    string
			createdAt int64
		)
		if err := rows.Scan(&entry.ID, &entry.Identity, &entry.Amount, &reason, &entry.Reference, &createdAt); err != nil {
			return storage.Account{}, fmt.Errorf("scan ledger entry: %w", err)
		}
		entry.Reason = storage.LedgerReason(reason)
		entry.CreatedAt = fromMillis(createdAt)
		account.Entries = append(account.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return storage.Account{}, fmt.Errorf("iterate ledger: %w", err)
	}
	return account, nil
}

func isConstraintError(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
