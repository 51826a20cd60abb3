package main

import (
	"os"

	"github.com/breate-dev/breate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
