// Package main is the entry point for the solanainit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/solanainit/cli/internal/cmd"
	oerrors "github.com/solanainit/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
