package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akhildatla/samisa/pkg/repl"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive SAM shell",
		Args:  cobra.NoArgs,
		Run:   runRepl,
	}

	cmd.Flags().Bool("hex", false, "Start in hex decode mode")

	RootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) {
	hexMode, _ := cmd.Flags().GetBool("hex")

	r := repl.New()
	if hexMode {
		r.SetMode(repl.ModeHex)
	}
	r.Start(os.Stdin, os.Stdout)
}
