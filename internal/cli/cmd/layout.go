package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termify/termify/internal/cli"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/infrastructure/layoutcodec"
	"github.com/termify/termify/internal/ui/coordinator"
)

var (
	splitTarget    string
	splitDirection string
	splitBefore    bool
	splitNew       bool
	splitName      string
	splitCols      int
	splitRows      int
	splitDir       string

	dropTarget   string
	dropPosition string
	dropTab      string
	dropEventID  string
	dropPointer  []float64
	dropBounds   []float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and edit the pane layout of the active workspace",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the tab strip and pane tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), a.Coordinator.CurrentLayout(), func() string {
			return renderLayout(a, st)
		})
	},
}

var layoutSplitCmd = &cobra.Command{
	Use:   "split [TERMINAL_ID]",
	Short: "Split a pane to show a terminal",
	Long: `Split the target pane and place a terminal next to it.

On an empty layout the terminal becomes the only pane and --target is not
needed. With --new the server creates the terminal first; no argument is
taken and --name, --cols, --rows and --cwd describe the new terminal.

Examples:
  termify layout split term-2 --target pane-1 --direction vertical
  termify layout split --new --name logs --target pane-1 --before`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayoutSplit,
}

func runLayoutSplit(cmd *cobra.Command, args []string) error {
	direction, err := entity.ParseOrientation(splitDirection)
	if err != nil {
		return err
	}
	placement := entity.PlaceAfter
	if splitBefore {
		placement = entity.PlaceBefore
	}
	if splitNew == (len(args) == 1) {
		return errors.New("pass either a TERMINAL_ID or --new")
	}

	a, err := startedApp()
	if err != nil {
		return err
	}

	if splitNew {
		res, err := a.Coordinator.CreateTerminalInSplit(a.Ctx(), coordinator.CreateSplitRequest{
			TargetID:  entity.PaneID(splitTarget),
			Direction: direction,
			Placement: placement,
			Spec: entity.TerminalSpec{
				Name:       splitName,
				Cols:       splitCols,
				Rows:       splitRows,
				WorkingDir: splitDir,
			},
		})
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func() string {
			return a.Theme.RenderSuccess("created %s in pane %s", res.Terminal.ID, res.NewPaneID)
		})
	}

	out, err := a.Coordinator.SplitPane(a.Ctx(), coordinator.SplitRequest{
		TargetID:   entity.PaneID(splitTarget),
		Direction:  direction,
		TerminalID: entity.TerminalID(args[0]),
		Placement:  placement,
	})
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), map[string]any{"changed": out.Changed, "new_pane_id": out.NewPaneID}, func() string {
		if !out.Changed {
			return a.Theme.RenderInfo("pane %s not found, layout unchanged", splitTarget)
		}
		return a.Theme.RenderSuccess("new pane %s", out.NewPaneID) + "\n" + a.Theme.RenderPaneTree(out.Root)
	})
}

var layoutCloseCmd = &cobra.Command{
	Use:   "close PANE_ID",
	Short: "Close a pane; its siblings take over the space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		changed, err := a.Coordinator.RemovePane(a.Ctx(), entity.PaneID(args[0]))
		if err != nil {
			return err
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), map[string]bool{"changed": changed}, func() string {
			if !changed {
				return a.Theme.RenderInfo("no pane %s", args[0])
			}
			return a.Theme.RenderPaneTree(st.Root)
		})
	},
}

var layoutEqualizeCmd = &cobra.Command{
	Use:   "equalize",
	Short: "Give every pane in each split the same share",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		changed, err := a.Coordinator.EqualizePanes(a.Ctx())
		if err != nil {
			return err
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), map[string]bool{"changed": changed}, func() string {
			return a.Theme.RenderPaneTree(st.Root)
		})
	},
}

var layoutResizeCmd = &cobra.Command{
	Use:   "resize SPLIT_ID WEIGHT...",
	Short: "Set the size shares of a split's children",
	Long: `Set the relative sizes of a split's children. Weights are normalized, so
"resize pane-3 3 1" gives the first child 75% and the second 25%.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sizes, err := parseFloats(args[1:])
		if err != nil {
			return err
		}
		a, err := startedApp()
		if err != nil {
			return err
		}
		changed, err := a.Coordinator.ResizeSplit(a.Ctx(), entity.PaneID(args[0]), sizes)
		if err != nil {
			return err
		}
		st := a.Coordinator.State()
		return render(cmd.OutOrStdout(), map[string]bool{"changed": changed}, func() string {
			return a.Theme.RenderPaneTree(st.Root)
		})
	},
}

var layoutDropCmd = &cobra.Command{
	Use:   "drop [TERMINAL_ID]",
	Short: "Drop a terminal or tab onto a pane",
	Long: `Apply a drag and drop onto a pane.

The drop region is given with --target and --position (left, right, top,
bottom, center), or as a pointer over the rendered layout with --pointer X,Y
and --bounds X,Y,W,H. An edge drop splits the target pane; a center drop
activates the target's tab.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayoutDrop,
}

func runLayoutDrop(cmd *cobra.Command, args []string) error {
	var dragged entity.TerminalID
	if len(args) == 1 {
		dragged = entity.TerminalID(args[0])
	}
	if dragged == "" && dropTab == "" {
		return errors.New("pass a TERMINAL_ID or --tab")
	}

	a, err := startedApp()
	if err != nil {
		return err
	}

	var res coordinator.DropResult
	switch {
	case len(dropPointer) > 0:
		if len(dropPointer) != 2 || len(dropBounds) != 4 {
			return errors.New("--pointer takes X,Y and --bounds takes X,Y,W,H")
		}
		res, err = a.Coordinator.HandlePointerDrop(a.Ctx(), coordinator.PointerDrop{
			EventID:           dropEventID,
			Bounds:            entity.Rect{X: dropBounds[0], Y: dropBounds[1], W: dropBounds[2], H: dropBounds[3]},
			Pointer:           entity.Point{X: dropPointer[0], Y: dropPointer[1]},
			DraggedTerminalID: dragged,
			DraggedTabID:      entity.TabID(dropTab),
		})
	default:
		pos, perr := entity.ParseDropPosition(dropPosition)
		if perr != nil {
			return perr
		}
		res, err = a.Coordinator.HandleTabDrop(a.Ctx(), coordinator.DropEvent{
			EventID:           dropEventID,
			TargetPaneID:      entity.PaneID(dropTarget),
			DraggedTerminalID: dragged,
			DraggedTabID:      entity.TabID(dropTab),
			Position:          pos,
		})
	}
	if err != nil {
		return err
	}

	out := map[string]any{
		"action":      res.Action.String(),
		"duplicate":   res.Duplicate,
		"new_pane_id": res.NewPaneID,
		"tab_id":      res.TabID,
	}
	st := a.Coordinator.State()
	return render(cmd.OutOrStdout(), out, func() string {
		return a.Theme.RenderInfo("drop: %s", res.Action) + "\n" + renderLayout(a, st)
	})
}

var layoutSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of saved layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := layoutcodec.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func renderLayout(a *cli.App, st coordinator.State) string {
	name := "-"
	if st.Workspace != nil {
		name = st.Workspace.Name
	}
	var b strings.Builder
	b.WriteString(a.Theme.Title.Render(name))
	b.WriteString("\n")
	b.WriteString(a.Theme.RenderTabBar(st.Tabs, st.ActiveTabID))
	b.WriteString("\n")
	b.WriteString(a.Theme.RenderPaneTree(st.Root))
	if st.PendingSplit != nil {
		b.WriteString("\n")
		b.WriteString(a.Theme.RenderInfo("split pending on %s", st.PendingSplit.SourceTerminalID))
	}
	return b.String()
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(
		layoutShowCmd,
		layoutSplitCmd,
		layoutCloseCmd,
		layoutEqualizeCmd,
		layoutResizeCmd,
		layoutDropCmd,
		layoutSchemaCmd,
	)

	f := layoutSplitCmd.Flags()
	f.StringVarP(&splitTarget, "target", "t", "", "pane to split")
	f.StringVarP(&splitDirection, "direction", "d", "horizontal", "horizontal (side by side) or vertical (stacked)")
	f.BoolVar(&splitBefore, "before", false, "place the new pane left of or above the target")
	f.BoolVar(&splitNew, "new", false, "create a new terminal on the server")
	f.StringVar(&splitName, "name", "", "name of the new terminal")
	f.IntVar(&splitCols, "cols", 0, "columns of the new terminal")
	f.IntVar(&splitRows, "rows", 0, "rows of the new terminal")
	f.StringVar(&splitDir, "cwd", "", "working directory of the new terminal")

	f = layoutDropCmd.Flags()
	f.StringVarP(&dropTarget, "target", "t", "", "pane dropped onto")
	f.StringVarP(&dropPosition, "position", "p", string(entity.DropCenter), "left, right, top, bottom or center")
	f.StringVar(&dropTab, "tab", "", "dragged tab instead of a terminal")
	f.StringVar(&dropEventID, "event-id", "", "drag gesture id; repeated ids are ignored")
	f.Float64SliceVar(&dropPointer, "pointer", nil, "pointer position X,Y")
	f.Float64SliceVar(&dropBounds, "bounds", nil, "layout bounds X,Y,W,H")
}
