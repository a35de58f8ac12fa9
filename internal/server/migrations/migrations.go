// Package migrations embeds the goose schema migrations, one directory per
// supported backend.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
