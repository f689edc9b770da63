package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsim-imai/polisearch/internal/political"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	intent    string
	limit     int
	timeScope string
	format    string // "text", "json"
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a political-content search",
		Long: `Run a political-content search with intent-aware query expansion
and ranking.

Intents: support_rating, election_prediction, policy_analysis,
political_news, politician_info, party_info, political_scandal,
coalition_analysis.

Examples:
  polisearch search "岸田内閣" --intent support_rating
  polisearch search "憲法改正" --intent policy_analysis --limit 5
  polisearch search "選挙" --time recent --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSearch(cmd, query, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.intent, "intent", "i", "", "Search intent (default: general)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().StringVar(&opts.timeScope, "time", "all", "Time scope: all, recent, week, month")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := newEngine(cfg)
	results := engine.Search(cmd.Context(), query, political.SearchOptions{
		Intent:    political.Intent(opts.intent),
		Limit:     opts.limit,
		TimeScope: political.TimeScope(opts.timeScope),
	})

	return writeResults(cmd.OutOrStdout(), query, results, opts.format)
}

// writeResults renders a ranked result list as text or JSON.
func writeResults(w io.Writer, query string, results []political.Result, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintf(w, "No results found for %q\n", query)
		return nil
	}

	fmt.Fprintf(w, "Found %d results for %q:\n\n", len(results), query)
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s (score: %.3f)\n", i+1, r.Title, r.FinalScore)
		fmt.Fprintf(w, "   %s\n", r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(w, "   %s\n", r.Snippet)
		}
		fmt.Fprintln(w)
	}
	return nil
}
