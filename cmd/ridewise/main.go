package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/Richard-Gidi/Ridewise/internal/cli"
	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ridewise.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(ridewise.ExitCodeForError(err))
	}
}
