package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ExitCode maps a startup error to a process status. A help request is not a
// failure; anything else is a usage error.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// ExitOnParseError reports err and exits with ExitCode(err). It returns
// without exiting when err is nil.
func ExitOnParseError(err error) {
	if err == nil {
		return
	}
	code := ExitCode(err)
	reportParseError(os.Stderr, err, code)
	os.Exit(code)
}

func reportParseError(w io.Writer, err error, code int) {
	if code == 0 {
		return
	}
	fmt.Fprintf(w, "sabhaenabler: %v\n", err)
}
