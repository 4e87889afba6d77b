// Package midcar holds assets embedded into the binaries.
package midcar

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
