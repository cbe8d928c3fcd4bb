package main

import (
	"os"

	"github.com/zecke/rostergen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
