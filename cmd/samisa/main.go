package main

import (
	"os"

	"github.com/akhildatla/samisa/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
