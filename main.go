package main

import (
	"os"

	"github.com/rivertam/pants-off-podrick/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
