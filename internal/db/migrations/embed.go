// filepath: internal/db/migrations/embed.go
package migrations

import "embed"

// FS embeds the SQL schema batch applied when a store is opened.
//
//go:embed *.sql
var FS embed.FS
