package main

import (
	"os"

	"github.com/goliatone/go-catalog/cmd/catalog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
