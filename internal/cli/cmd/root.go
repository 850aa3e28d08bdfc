// Package cmd provides Cobra CLI commands for termify.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termify/termify/internal/cli"
	"github.com/termify/termify/internal/cli/styles"
	"github.com/termify/termify/internal/domain/build"
)

var (
	app          *cli.App
	buildInfo    build.Info
	outputFormat string
	rootCmd      = &cobra.Command{
		Use:   "termify",
		Short: "Workspaces, tabs and split panes for termify terminals",
		Long: `Termify organizes server-side terminals into workspaces.

Each workspace has a tab strip and a tiling pane layout. Panes are split,
resized and closed like in a terminal multiplexer, and terminals can be
dropped onto any edge of an existing pane. Layouts are saved locally or on
the termify server and restored when you come back to a workspace.

Commands operate on the active workspace. Use 'termify workspaces switch'
to change it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "schema":
				return nil
			}
			if err := validateOutput(); err != nil {
				return err
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if app == nil {
				return nil
			}
			err := app.Close()
			app = nil
			return err
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", outputText,
		"output format: text, json, yaml")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info.WithDefaults()
}

var errAppNotInitialized = errors.New("app not initialized")

// startedApp returns the app with its workspace loaded.
func startedApp() (*cli.App, error) {
	if app == nil {
		return nil, errAppNotInitialized
	}
	if err := app.StartWorkspace(); err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}
	return app, nil
}

// newTheme returns the app theme, or the default one for commands that run
// without the app.
func newTheme() *styles.Theme {
	if app != nil {
		return app.Theme
	}
	return styles.NewTheme()
}
