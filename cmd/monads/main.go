package main

import (
	"os"

	"github.com/ib-77/monads/cmd/monads/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
