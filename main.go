package main

import (
	"os"

	"github.com/3leaps/gostratus/internal/cmd"
)

// Build metadata injected via -ldflags.
var (
	version   = "dev"
	commit    = "HEAD"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)
	os.Exit(cmd.Execute())
}
