// Package main is the entry point for the icf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/evcraddock/image-comments/internal/cli"
)

func main() {
	err := cli.NewRootCmd().Execute()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(cli.ExitCode(err))
}
