package main

import (
	"os"

	"github.com/bnema/schedlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
