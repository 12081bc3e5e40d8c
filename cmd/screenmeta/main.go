// Package main is the entry point for the screenmeta CLI.
package main

import (
	"os"

	"github.com/screenmeta/screenmeta/cmd/screenmeta/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
