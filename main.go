package main

import (
	"fmt"
	"os"

	"quicklaunch/internal/commands"
)

var version = "dev" // set at build time via -ldflags

func main() {
	commands.SetVersion(version)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
