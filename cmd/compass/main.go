package main

import (
	"github.com/DevCompass/compass-cli/internal/cmd"

	// Bootstrap: register all factor analyzers
	_ "github.com/DevCompass/compass-cli/internal/bootstrap"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	// Set version for version command
	cmd.SetVersion(Version)

	cmd.Execute()
}
