// Package cli implements the mdhtml commands using Cobra.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by the commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
}

func (a *app) settings() Settings {
	return settingsFrom(a.v)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "mdhtml",
		Short: "Render AI-generated Markdown summaries as HTML",
		Long: `mdhtml converts the constrained Markdown used in generated procurement
summaries (headers, emphasis, inline code, pipe tables, lists, blockquotes,
rules) into HTML ready to insert into a page.

Usage:
  mdhtml render [file] [flags]
  mdhtml summaries <results.json|dir> [flags]
  mdhtml outline [file]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(a.v, a.configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: ./mdhtml.yaml or $XDG_CONFIG_HOME/mdhtml/mdhtml.yaml)")
	flags.String("table-class", "markdown-table", "Class attribute for rendered tables")
	flags.Bool("sanitize", false, "Restrict output to the renderer's element vocabulary")
	flags.Bool("html", false, "Input is HTML; normalise it to Markdown before rendering")
	flags.Int("workers", 0, "Concurrent renderers for batch commands (0 = CPU count)")
	for _, o := range GetConfigOptions() {
		_ = a.v.BindPFlag(o.Key, flags.Lookup(o.Flag))
	}

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newSummariesCmd(a))
	root.AddCommand(newOutlineCmd(a))

	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readInput reads the file named in args, or stdin when no file (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}
