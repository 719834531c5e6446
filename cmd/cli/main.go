// Package main is the entry point for the mobile-tariffs CLI.
package main

import (
	"os"

	"mobile-tariffs/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
