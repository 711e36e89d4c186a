// Package main is the entry point for the project-update CLI tool.
package main

import (
	"os"

	"github.com/austenstone/project-update/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
