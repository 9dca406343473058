package main

import (
	"os"

	"github.com/glasor/glazing-backend/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
