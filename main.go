package main

import (
	"os"

	"github.com/andrejsstepanovs/madlibs/pkg"
)

func main() {
	if err := pkg.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
