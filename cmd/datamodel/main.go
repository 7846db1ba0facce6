// Package main provides the CLI for the datamodel lookup tool.
package main

import (
	"os"

	"github.com/leapstack-labs/datamodel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
