package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/calegray/harmonia/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		// Domain errors are already reported through the formatter;
		// anything else (flag parsing, etc.) still needs printing.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
