// Package audit contains durable audit writes for pooled die RPCs.
//
// Each handled call is persisted with its outcome code and the calling
// identity so settlement and claim traffic can be reviewed after the fact.
//
// For distributed tracing, this service still uses package `internal/platform/otel`.
package audit
