// Package migrations embeds the goose SQL migrations of the campus board.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
