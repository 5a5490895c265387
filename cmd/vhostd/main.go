// Command vhostd checks and inspects nginx-like virtual host configuration
// files.
package main

import (
	"fmt"
	"os"

	"github.com/vhostd/vhostd/internal/cmd"
)

func main() {
	command, err := cmd.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
