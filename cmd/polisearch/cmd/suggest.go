package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsim-imai/polisearch/internal/political"
)

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "Generate political search suggestions",
		Long: `Generate search suggestions for a query by pure string templating.
No network calls are made.

Example:
  polisearch suggest "岸田"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			for _, s := range political.Suggest(query) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
