package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akhildatla/samisa/pkg/asm"
)

func init() {
	cmd := &cobra.Command{
		Use:   "disasm <input.sam>",
		Short: "Disassemble a SAM instruction stream to source text",
		Args:  cobra.ExactArgs(1),
		Run:   runDisasm,
	}

	cmd.Flags().StringP("output", "o", "-", "Output path (default: stdout)")

	RootCmd.AddCommand(cmd)
}

func runDisasm(cmd *cobra.Command, args []string) {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")

	var data []byte
	var err error
	if input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		exitErr("read stream", err)
	}

	text, err := asm.DisassembleStream(data)
	if err != nil {
		exitErr("disassemble", err)
	}

	if output == "-" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		exitErr("write source", err)
	}
}
