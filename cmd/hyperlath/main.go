package main

import (
	"os"

	"github.com/katalvlaran/hyperlath/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
