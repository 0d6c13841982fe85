// Command zoned inspects and converts zoned date-times from the command line.
package main

import (
	"os"

	"github.com/rabitt1ove/zoned/cmd/zoned/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
