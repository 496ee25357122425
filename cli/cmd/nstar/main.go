// nstar CLI - intent graph dispatch kernel command-line interface.
package main

import (
	"os"

	"github.com/erikhoward/nstar/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
