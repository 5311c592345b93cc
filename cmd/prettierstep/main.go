// Package main is the entry point for prettierstep.
package main

import (
	"os"

	"github.com/donaldgifford/prettierstep/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{Version: version, Commit: commit, Date: date}, os.Args[1:]))
}
