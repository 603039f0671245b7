package main

import (
	"os"

	"github.com/rpgo/savings-simulator/cmd/savings-sim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
