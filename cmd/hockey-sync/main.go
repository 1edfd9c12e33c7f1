package main

import (
	"os"

	"github.com/pfrederiksen/hockey-sync/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(cli.ExitError)
	}
}
