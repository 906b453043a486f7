package main

import (
	"os"

	"github.com/ajanata/voltclock-hardware/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
