// gogpt - command-line client for OpenAI-style chat and completion APIs.
package main

import (
	"os"

	"github.com/BaconStrps/go-gpt/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
