// Command drachma runs the Drachma wallet: a local HTTP API plus wallet,
// mining and settings subcommands.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
