package cmd

import "github.com/xolan/devjournal/internal/cli"

// deps is the global dependencies instance used by commands.
// In production, this is cli.DefaultDeps() with services wired by the root
// command once flags and config are known. Tests can replace it.
var deps = cli.DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = cli.DefaultDeps()
}
