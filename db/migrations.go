// Package db carries the embedded goose migrations for the service schema.
package db

import "embed"

//go:embed migrations/*.sql
var EmbedMigrations embed.FS
