package main

import (
	"os"

	"github.com/khoad/asynclist/cmd/bookbrowser/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
