package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akhildatla/samisa/pkg/asm"
)

func init() {
	cmd := &cobra.Command{
		Use:   "asm <input.sasm>",
		Short: "Assemble a source file into a SAM instruction stream",
		Args:  cobra.ExactArgs(1),
		Run:   runAsm,
	}

	cmd.Flags().StringP("output", "o", "", "Output path (default: input with .sam extension, or stdout for -)")

	RootCmd.AddCommand(cmd)
}

func runAsm(cmd *cobra.Command, args []string) {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")

	var source []byte
	var err error
	if input == "-" {
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(input)
	}
	if err != nil {
		exitErr("read source", err)
	}

	data, err := asm.AssembleStream(string(source))
	if err != nil {
		exitErr("assemble", err)
	}

	if output == "" {
		if input == "-" {
			output = "-"
		} else {
			output = replaceExt(input, ".sam")
		}
	}

	if output == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			exitErr("write stream", err)
		}
		return
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		exitErr("write stream", err)
	}
	fmt.Printf("wrote %d bytes to %s\n", len(data), output)
}

func replaceExt(path, ext string) string {
	if i := strings.LastIndexByte(path, '.'); i > 0 {
		return path[:i] + ext
	}
	return path + ext
}
