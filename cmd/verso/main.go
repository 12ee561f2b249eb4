// Package main is the entry point for the verso CLI.
package main

import (
	"os"

	"github.com/f3rmion/verso/cmd/verso/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
