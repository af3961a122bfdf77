// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package data embeds the SQL schema migrations into the server binary.
package data

import "embed"

// Migrations holds every file under migrations/, read by the startup runner
// when no MIGRATION_PATH override is configured.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of [Migrations] holding the .sql files.
const MigrationsDir = "migrations"
