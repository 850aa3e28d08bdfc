package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termify/termify/internal/domain/entity"
)

var (
	wsColor    string
	wsIcon     string
	wsDefault  bool
	wsName     string
	wsNoSwitch bool
)

var workspacesCmd = &cobra.Command{
	Use:     "workspaces",
	Aliases: []string{"ws"},
	Short:   "Manage workspaces",
}

var workspacesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		list, err := a.Coordinator.Workspaces(a.Ctx())
		if err != nil {
			return err
		}
		active := a.Coordinator.CurrentWorkspaceID()
		return render(cmd.OutOrStdout(), list, func() string {
			return a.Theme.WorkspaceTable(list, active)
		})
	},
}

var workspacesCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a workspace and switch to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		ws, err := a.Coordinator.CreateWorkspace(a.Ctx(), entity.WorkspaceInput{
			Name:      args[0],
			Color:     wsColor,
			Icon:      wsIcon,
			IsDefault: wsDefault,
		})
		if err != nil {
			return err
		}
		if !wsNoSwitch {
			if err := a.Coordinator.SwitchWorkspace(a.Ctx(), ws.ID); err != nil {
				return err
			}
		}
		return render(cmd.OutOrStdout(), ws, func() string {
			return a.Theme.RenderSuccess("created workspace %s (%s)", ws.Name, ws.ID)
		})
	},
}

var workspacesUpdateCmd = &cobra.Command{
	Use:     "update ID",
	Aliases: []string{"rename"},
	Short:   "Change a workspace's name, color, icon or default flag",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}

		var patch entity.WorkspacePatch
		flags := cmd.Flags()
		if flags.Changed("name") {
			patch.Name = &wsName
		}
		if flags.Changed("color") {
			patch.Color = &wsColor
		}
		if flags.Changed("icon") {
			patch.Icon = &wsIcon
		}
		if flags.Changed("default") {
			patch.IsDefault = &wsDefault
		}

		ws, err := a.Coordinator.UpdateWorkspace(a.Ctx(), entity.WorkspaceID(args[0]), patch)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), ws, func() string {
			return a.Theme.RenderSuccess("updated workspace %s", ws.Name)
		})
	},
}

var workspacesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a workspace and its saved layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		id := entity.WorkspaceID(args[0])
		if err := a.Coordinator.DeleteWorkspace(a.Ctx(), id); err != nil {
			return err
		}
		active := a.Coordinator.CurrentWorkspaceID()
		return render(cmd.OutOrStdout(), map[string]string{"deleted": string(id), "active": string(active)}, func() string {
			return a.Theme.RenderSuccess("deleted workspace %s, active is %s", id, active)
		})
	},
}

var workspacesReorderCmd = &cobra.Command{
	Use:   "reorder ID...",
	Short: "Set the display order; every workspace must be listed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		ids := make([]entity.WorkspaceID, len(args))
		for i, arg := range args {
			ids[i] = entity.WorkspaceID(arg)
		}
		if err := a.Coordinator.ReorderWorkspaces(a.Ctx(), ids); err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), ids, func() string {
			return a.Theme.RenderSuccess("reordered %d workspaces", len(ids))
		})
	},
}

var workspacesSwitchCmd = &cobra.Command{
	Use:   "switch ID",
	Short: "Save the current layout and activate another workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		if err := a.Coordinator.SwitchWorkspace(a.Ctx(), entity.WorkspaceID(args[0])); err != nil {
			return fmt.Errorf("switch workspace: %w", err)
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), st.Workspace, func() string {
			return a.Theme.RenderSuccess("switched to %s (%d panes, %d tabs)",
				st.Workspace.Name, st.Root.LeafCount(), len(st.Tabs))
		})
	},
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
	workspacesCmd.AddCommand(
		workspacesListCmd,
		workspacesCreateCmd,
		workspacesUpdateCmd,
		workspacesDeleteCmd,
		workspacesReorderCmd,
		workspacesSwitchCmd,
	)

	workspacesCreateCmd.Flags().StringVar(&wsColor, "color", "", "workspace color")
	workspacesCreateCmd.Flags().StringVar(&wsIcon, "icon", "", "workspace icon")
	workspacesCreateCmd.Flags().BoolVar(&wsDefault, "default", false, "make this the default workspace")
	workspacesCreateCmd.Flags().BoolVar(&wsNoSwitch, "no-switch", false, "stay on the current workspace")

	workspacesUpdateCmd.Flags().StringVar(&wsName, "name", "", "new name")
	workspacesUpdateCmd.Flags().StringVar(&wsColor, "color", "", "new color")
	workspacesUpdateCmd.Flags().StringVar(&wsIcon, "icon", "", "new icon")
	workspacesUpdateCmd.Flags().BoolVar(&wsDefault, "default", false, "set or clear the default flag")
}
