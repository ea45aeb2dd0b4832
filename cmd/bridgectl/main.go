// Package main is the entry point for the bridgectl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/bridgectl/cmd/bridgectl/commands"
	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *bridgeerrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	os.Exit(bridgeerrors.ExitUser)
}
