package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newGovernmentCmd() *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "government <query>",
		Short: "Search official government sites only",
		Long: `Search official government domains (kantei.go.jp, soumu.go.jp, ...)
with one site-scoped query per domain.

Example:
  polisearch government "予算案" --limit 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results := newEngine(cfg).SearchGovernment(cmd.Context(), query, limit)
			return writeResults(cmd.OutOrStdout(), query, results, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")
	return cmd
}

func newMediaCmd() *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "media <query>",
		Short: "Search major news outlets only",
		Long: `Search the major news outlets (nhk.or.jp, asahi.com, ...) with one
site-scoped query per outlet. Results carry the outlet's political lean.

Example:
  polisearch media "内閣改造" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results := newEngine(cfg).SearchMedia(cmd.Context(), query, limit)
			return writeResults(cmd.OutOrStdout(), query, results, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")
	return cmd
}
