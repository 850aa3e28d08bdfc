package cmd

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := validateOutput(); err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), buildInfo, func() string {
			return newTheme().RenderVersion(buildInfo)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
