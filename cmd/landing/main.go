package main

import (
	"os"

	"github.com/3-lines-studio/landing/internal/commands"
)

var version = "dev"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
