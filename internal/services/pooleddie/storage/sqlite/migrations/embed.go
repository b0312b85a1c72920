package migrations

import "embed"

// FS contains embedded SQLite migrations for pooled die storage.
//
//go:embed *.sql
var FS embed.FS
