package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tunedadm/internal/control"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(control.ExitCode(err))
	}
}
