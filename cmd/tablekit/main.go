package main

import (
	"errors"
	"fmt"
	"os"

	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns 2 for documents that failed to parse or validate and 1 for
// everything else.
func exitCode(err error) int {
	var parseErr *tkerrors.ParseError
	var validationErr *tkerrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return 2
	}
	return 1
}
