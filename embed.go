// Package foodtrace holds assets that are embedded into the FoodTrace binary.
package foodtrace

import "embed"

// Migrations contains the goose SQL migrations for the FoodTrace schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
