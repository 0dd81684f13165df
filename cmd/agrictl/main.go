package main

import (
	"os"

	"agriformation_backend/cmd/agrictl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
