package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/termify/termify/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and data directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return errAppNotInitialized
		}
		paths := map[string]string{
			"config_file": a.ConfigFile(),
			"database":    a.Config.Database.Path,
			"log_dir":     a.Config.Logging.LogDir,
		}
		if dir, err := a.Paths.DataDir(); err == nil {
			paths["data_dir"] = dir
		}
		if dir, err := a.Paths.StateDir(); err == nil {
			paths["state_dir"] = dir
		}
		return render(cmd.OutOrStdout(), paths, func() string {
			return a.Theme.RenderTable(
				[]string{"Path", "Location"},
				[][]string{
					{"config file", paths["config_file"]},
					{"database", paths["database"]},
					{"logs", paths["log_dir"]},
					{"data", paths["data_dir"]},
					{"state", paths["state_dir"]},
				},
			)
		})
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults and TERMIFY_* environment overrides.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return errAppNotInitialized
		}
		cfg := *a.Config
		if cfg.API.Token != "" {
			cfg.API.Token = "********"
		}
		data, err := config.EncodeTOML(&cfg)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), cfg, func() string {
			return string(data)
		})
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and report layout settings as they change",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return errAppNotInitialized
		}
		ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		a.OnConfigApplied(func(cfg *config.Config) {
			fmt.Fprintln(out, a.Theme.RenderSuccess("reloaded: drop_center_fraction=%.2f unique_terminal_panes=%t",
				cfg.Layout.DropCenterFraction, cfg.Layout.UniqueTerminalPanes))
		})
		if err := a.WatchConfig(); err != nil {
			return err
		}
		fmt.Fprintln(out, a.Theme.RenderInfo("watching %s (ctrl+c to stop)", a.ConfigFile()))

		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configWatchCmd)
}
