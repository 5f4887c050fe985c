package main

import (
	"bytes"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}
