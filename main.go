package main

import (
	"os"

	"github.com/gridcortex/bessval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
