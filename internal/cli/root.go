// Package cli implements the samisa CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "samisa",
	Short: "Assembler and inspector for the SAM instruction set",
	Long: "Tools for the SAM ISA, a compact binary encoding of AI actions.\n" +
		"Assemble text programs to instruction streams, disassemble them\n" +
		"back, and inspect raw instruction bytes.",
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
