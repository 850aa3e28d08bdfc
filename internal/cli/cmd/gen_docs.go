package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdgadapter "github.com/termify/termify/internal/infrastructure/xdg"
)

var (
	genDocsDir    string
	genDocsFormat string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown from the command tree",
	Long: `Generate reference documentation for every termify command.

Man pages go to ~/.local/share/man/man1 by default so 'man termify' works
right away (run 'mandb' if it does not). Markdown goes to ./docs.

Examples:
  termify gen-docs
  termify gen-docs --format markdown
  termify gen-docs --dir ./man`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: xdgadapter.New().ManDir,
		generate: func(dir string) error {
			date := time.Now()
			if buildInfo.BuildDate != "" {
				if t, err := time.Parse(time.RFC3339, buildInfo.BuildDate); err == nil {
					date = t
				}
			}
			return doc.GenManTree(rootCmd, &doc.GenManHeader{
				Title:   "TERMIFY",
				Section: "1",
				Source:  "termify " + buildInfo.Version,
				Manual:  "Termify Manual",
				Date:    &date,
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "docs", nil },
		generate:   func(dir string) error { return doc.GenMarkdownTree(rootCmd, dir) },
	},
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use man or markdown)", genDocsFormat)
	}

	dir := genDocsDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve %s directory: %w", genDocsFormat, err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rootCmd.DisableAutoGenTag = true
	if err := format.generate(dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}
	return listGenerated(cmd.OutOrStdout(), dir, format.ext)
}

func listGenerated(w io.Writer, dir, ext string) error {
	theme := newTheme()
	fmt.Fprintln(w, theme.RenderSuccess("wrote docs to %s", dir))

	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil
	}
	for _, m := range matches {
		fmt.Fprintln(w, theme.Subtle.Render("  "+filepath.Base(m)))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsDir, "dir", "d", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "man or markdown")
}
