// Command prepset validates and cleans line-delimited JSON datasets
// for supervised fine-tuning.
package main

import (
	"os"

	"github.com/prepset/prepset-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
