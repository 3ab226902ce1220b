// poly maps concepts to Polyhedral Intelligence glyphs and scaffolds
// workspace files around them.
package main

import (
	"os"

	"github.com/roach88/poly/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand(version)))
}
