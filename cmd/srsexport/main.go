// Package main is the entry point for the srsexport CLI.
package main

import (
	"os"

	"github.com/mirelk/srsexport/cmd/srsexport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
