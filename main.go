package main

import (
	"os"

	"github.com/innovatides/atomquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
