// Package main is the entry point for the rpgstate command
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-state/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

// reportError prints err and, for invalid input, one line per failing field
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if !errors.IsInvalidArgument(err) {
		return
	}

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	if !ok {
		return
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(fields[name], ", "))
	}
}
