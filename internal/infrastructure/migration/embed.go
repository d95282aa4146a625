package migration

import "embed"

// Directories inside the embedded FS.
const (
	gooseScriptsDir   = "scripts"
	migrateScriptsDir = "scripts_migrate"
)

//go:embed scripts/*.sql
var gooseScripts embed.FS

//go:embed scripts_migrate/*.sql
var migrateScripts embed.FS
