package main

import (
	"os"

	"github.com/certforge/certforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
