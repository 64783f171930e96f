package main

import (
	"fmt"
	"io"
)

// printLines writes each line followed by a newline.
func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// outputError writes an error message to w.
func outputError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", err)
}
