package main

import (
	"os"

	"github.com/laibe/ratio-gang-cli/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
