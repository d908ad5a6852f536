// Command redten is the CLI for the redten AI job-processing service.
package main

import (
	"os"

	"github.com/redten-labs/redten-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
