// Package main provides the entry point for the dataminer CLI.
package main

import (
	"os"

	"github.com/expki/go-dataminer/cmd/dataminer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
