// Package main provides the entry point for the polisearch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tsim-imai/polisearch/cmd/polisearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
