package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/riverfjs/mdhtml-go"
	"github.com/riverfjs/mdhtml-go/internal/results"
)

func newSummariesCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "summaries <results.json|dir>",
		Short: "Render the ai_summary of every result in a results file",
		Long: `Summaries loads a scraper results file, renders each non-empty ai_summary
concurrently and stores the markup in ai_summary_html. When a directory is
given, the newest evergabe_results_YYYYMMDD_HHMMSS.json in it is used.

Examples:
  mdhtml summaries output/
  mdhtml summaries output/evergabe_results_20260101_120000.json --out rendered.json
  mdhtml summaries output/ --workers 8 --sanitize`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("results path: %w", err)
			}
			if info.IsDir() {
				if path, err = results.Latest(path); err != nil {
					return err
				}
			}

			rs, err := results.Load(path)
			if err != nil {
				return err
			}

			s := a.settings()
			batch := mdhtml.NewBatch(s.Workers, s.Options()...)
			n, err := results.RenderSummaries(cmd.Context(), rs, batch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "rendered %d of %d summaries from %s\n", n, len(rs), filepath.Base(path))

			if outPath != "" {
				return results.Save(outPath, rs)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rs)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the updated results to this file instead of stdout")
	return cmd
}
