package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/tab2sql/internal/cli"
	"github.com/vvka-141/tab2sql/pkg/tab2sql"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(tab2sql.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(tab2sql.ExitCodeForError(err))
	}
}
