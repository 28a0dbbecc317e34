package main

import (
	"os"

	"github.com/quell-dev/quell/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
