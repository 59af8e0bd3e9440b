package main

import (
	"os"

	"github.com/aretedriver/gemba/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
