package main

import (
	"os"

	"github.com/MikeBiancalana/navkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
