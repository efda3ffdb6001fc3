package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akhildatla/samisa/pkg/isa"
)

// Version is the CLI version, overridable at build time with
// -ldflags "-X github.com/akhildatla/samisa/internal/cli.Version=...".
var Version = "0.1.0"

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version and stream format information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("samisa %s (stream format %s v%d)\n",
				Version, isa.StreamMagic, isa.StreamVersion)
		},
	}

	RootCmd.AddCommand(cmd)
}
