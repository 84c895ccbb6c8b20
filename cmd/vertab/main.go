// Package main provides the vertab command.
package main

import (
	"os"

	"github.com/leapstack-labs/vertab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
