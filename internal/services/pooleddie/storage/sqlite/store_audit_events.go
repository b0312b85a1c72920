package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/louisbranch/pooleddie/internal/services/pooleddie/storage"
)

// PutAuditEvent persists one handled-RPC audit row.
func (s *Store) PutAuditEvent(ctx context.Context, event storage.AuditEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(event.Method) == "" {
		return fmt.Errorf("method is required")
	}
	if strings.TrimSpace(event.Code) == "" {
		return fmt.Errorf("code is required")
	}
	if event.CreatedAt.IsZero() {
		return fmt.Errorf("created at is required")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO audit_events (
	id, method, code, actor, trace_id, span_id, duration_ms, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`,
		event.ID,
		strings.TrimSpace(event.Method),
		strings.TrimSpace(event.Code),
		strings.TrimSpace(event.Actor),
		event.TraceID,
		event.SpanID,
		event.DurationMS,
		toMillis(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put audit event: %w", err)
	}
	return nil
}

// ListAuditEvents returns up to limit audit events, newest first.
func (s *Store) ListAuditEvents(ctx context.Context, limit int) ([]storage.AuditEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, method, code, actor, trace_id, span_id, duration_ms, created_at
FROM audit_events
ORDER BY created_at DESC, rowid DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []storage.AuditEvent
	for rows.Next() {
		var (
			event     storage.AuditEvent
			createdAt int64
		)
		if err := rows.Scan(
			&event.ID,
			&event.Method,
			&event.Code,
			&event.Actor,
			&event.TraceID,
			&event.SpanID,
			&event.DurationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.CreatedAt = fromMillis(createdAt)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
