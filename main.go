package main

import (
	"fmt"
	"os"
)

// Run:
//
//	go run .                        # every demo
//	go run . run numeric            # one demo
//	go run . --config demos.yaml    # the demos listed in a file
//	go run . list
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
