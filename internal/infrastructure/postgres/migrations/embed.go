// Package migrations empaqueta los scripts SQL versionados (goose).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
