// Command domfocus replays and explores focus scenarios against a headless
// document.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/domfocus/cmd/domfocus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
