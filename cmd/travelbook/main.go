package main

import (
	"os"

	"travelbook/cmd/travelbook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
