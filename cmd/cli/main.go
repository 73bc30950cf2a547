// Package main is the entry point for the import-duty CLI.
package main

import (
	"os"

	"import-duty/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
