package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsim-imai/polisearch/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the polisearch version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "polisearch version %s\n", version.Version)
		},
	}
}
