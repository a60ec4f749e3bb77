// ironboxdx is the command-line client for the IronBox DX service.
package main

import (
	"os"

	"github.com/goironbox/ironboxdx-go/internal/cli"
	"github.com/goironbox/ironboxdx-go/internal/version"
)

// Version information, overridable via LDFLAGS at release build time.
var (
	Version   = "v2.0.0"
	BuildTime = "2026-08-29"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime

	os.Exit(cli.Execute())
}
