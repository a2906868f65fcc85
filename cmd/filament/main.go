package main

import (
	"os"

	"github.com/chazu/filament/cmd/filament/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
