package main

import (
	"os"

	"github.com/levelsnap/levelsnap/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
