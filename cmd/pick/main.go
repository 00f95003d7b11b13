// pick — interactively pick cells from delimited text.
//
// Reads a table from a file or stdin, lets the user select cells, and on
// enter prints the selected cells one per line and copies them to the
// clipboard.
//
// Run: GOWORK=off go run ./cmd/pick/ -d , data.csv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&rootOptions{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
