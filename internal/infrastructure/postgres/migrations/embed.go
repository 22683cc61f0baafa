// Package migrations contiene el esquema versionado de la base (formato goose).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
