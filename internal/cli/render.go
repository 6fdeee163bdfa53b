package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/mdhtml-go"
	"github.com/riverfjs/mdhtml-go/internal/normalize"
)

// toMarkdown converts HTML input; replaced in tests.
var toMarkdown = normalize.ToMarkdown

// markdownFromHTML 与 RenderWithOptions 一致：转换失败时记录日志并保留原文
func markdownFromHTML(source string) string {
	markdown, err := toMarkdown(source)
	if err != nil {
		mdhtml.Logger.Printf("HTML input kept as-is: %v", err)
		return source
	}
	return markdown
}

// renderOutput is the --segments JSON document.
type renderOutput struct {
	HTML     string           `json:"html"`
	Segments []mdhtml.Segment `json:"segments"`
}

func newRenderCmd(a *app) *cobra.Command {
	var withSegments bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render one Markdown summary to HTML",
		Long: `Render reads a Markdown summary from a file (or stdin) and writes the HTML.

Examples:
  mdhtml render summary.md
  cat summary.md | mdhtml render --sanitize
  mdhtml render summary.html --html
  mdhtml render summary.md --segments`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			s := a.settings()

			if !withSegments {
				fmt.Fprintln(cmd.OutOrStdout(), mdhtml.RenderWithOptions(input, s.Options()...))
				return nil
			}

			if s.HTMLInput {
				input = markdownFromHTML(input)
			}
			html, segments := mdhtml.RenderWithSegments(input, s.Config())
			if segments == nil {
				segments = []mdhtml.Segment{}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(renderOutput{HTML: html, Segments: segments})
		},
	}

	cmd.Flags().BoolVar(&withSegments, "segments", false, "Write HTML and block segments as JSON")
	return cmd
}

func newOutlineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "outline [file]",
		Short: "Print the block structure of a Markdown summary as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if a.settings().HTMLInput {
				input = markdownFromHTML(input)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(mdhtml.Outline(input))
		},
	}
}
