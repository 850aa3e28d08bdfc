package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/termify/termify/internal/domain/entity"
)

var (
	tabName    string
	tabView    bool
	tabReverse bool
)

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Manage the tab strip of the active workspace",
}

var tabsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tabs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), st.Tabs, func() string {
			return a.Theme.RenderTabBar(st.Tabs, st.ActiveTabID) + "\n" +
				a.Theme.TabTable(st.Tabs, st.ActiveTabID)
		})
	},
}

var tabsOpenCmd = &cobra.Command{
	Use:   "open TERMINAL_ID",
	Short: "Open or activate the tab of a terminal",
	Long: `Open a tab for a terminal, or activate it when the terminal already has one.

With --view the argument is a view key instead of a terminal id.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}

		var id entity.TabID
		if tabView {
			id, err = a.Coordinator.OpenView(a.Ctx(), args[0], tabName)
		} else {
			id, err = a.Coordinator.OpenTab(a.Ctx(), entity.TerminalID(args[0]), tabName)
		}
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), map[string]string{"tab_id": string(id)}, func() string {
			return a.Theme.RenderSuccess("active tab %s", id)
		})
	},
}

var tabsCloseCmd = &cobra.Command{
	Use:   "close TAB_ID",
	Short: "Close a tab; panes showing its terminal stay open",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		closed, err := a.Coordinator.CloseTab(a.Ctx(), entity.TabID(args[0]))
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), map[string]bool{"closed": closed}, func() string {
			if !closed {
				return a.Theme.RenderInfo("no tab %s", args[0])
			}
			return a.Theme.RenderSuccess("closed tab %s", args[0])
		})
	},
}

var tabsMoveCmd = &cobra.Command{
	Use:   "move TAB_ID INDEX",
	Short: "Move a tab to a new position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		a, err := startedApp()
		if err != nil {
			return err
		}
		moved, err := a.Coordinator.ReorderTabs(a.Ctx(), entity.TabID(args[0]), index)
		if err != nil {
			return err
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), st.Tabs, func() string {
			if !moved {
				return a.Theme.RenderInfo("tab order unchanged")
			}
			return a.Theme.RenderTabBar(st.Tabs, st.ActiveTabID)
		})
	},
}

var tabsActivateCmd = &cobra.Command{
	Use:   "activate TAB_ID",
	Short: "Make a tab active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		if _, err := a.Coordinator.ActivateTab(a.Ctx(), entity.TabID(args[0])); err != nil {
			return err
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), map[string]string{"active_tab_id": string(st.ActiveTabID)}, func() string {
			return a.Theme.RenderTabBar(st.Tabs, st.ActiveTabID)
		})
	},
}

var tabsCycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Activate the next tab, wrapping around",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		id, err := a.Coordinator.CycleTab(a.Ctx(), !tabReverse)
		if err != nil {
			return err
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), map[string]string{"active_tab_id": string(id)}, func() string {
			return a.Theme.RenderTabBar(st.Tabs, st.ActiveTabID)
		})
	},
}

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.AddCommand(
		tabsListCmd,
		tabsOpenCmd,
		tabsCloseCmd,
		tabsMoveCmd,
		tabsActivateCmd,
		tabsCycleCmd,
	)

	tabsOpenCmd.Flags().StringVar(&tabName, "name", "", "tab label")
	tabsOpenCmd.Flags().BoolVar(&tabView, "view", false, "open a view tab instead of a terminal tab")
	tabsCycleCmd.Flags().BoolVarP(&tabReverse, "reverse", "r", false, "cycle backwards")
}
