// Package migrations embeds the goose SQL migrations for the key/value store.
// The same files run on SQLite and PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
