// Package main provides the CLI entrypoint for formtree.
//
// formtree assembles form answers addressed by paths into one nested tree:
//   - build: entries file -> tree
//   - fill: form + answers -> tree
//   - check: validate a form
//   - render: form + answers -> text template output
//   - prompt: ask a form on the terminal -> tree
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "formtree:", err)
		os.Exit(1)
	}
}
