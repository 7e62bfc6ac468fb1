// Command folio browses a themed portfolio in the terminal.
package main

import (
	"os"

	"github.com/opencode-ai/folio/internal/cli"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
