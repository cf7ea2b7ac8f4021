package main

import (
	"os"

	"github.com/DjordjeVuckovic/encalc/cmd/encalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
