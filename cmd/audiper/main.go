package main

import (
	"os"

	"github.com/audiper-dev/audiper/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
