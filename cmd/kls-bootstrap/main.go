// Command kls-bootstrap builds kls in debug mode and links target/debug/kls
// to ./kls on the first run.
package main

import (
	"os"

	"github.com/kls-dev/kls/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.ExecuteBootstrap(version, commit, date); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
