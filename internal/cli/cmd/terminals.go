package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/termify/termify/internal/cli/model"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/logging"
)

var (
	termCols      int
	termRows      int
	termCwd       string
	termWorkspace string

	pickSplit  string
	pickSource string
	pickBefore bool
)

var terminalsCmd = &cobra.Command{
	Use:     "terminals",
	Aliases: []string{"term"},
	Short:   "List, create, rename and pick server terminals",
}

var terminalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List terminals on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return errAppNotInitialized
		}
		list, err := a.Terminals.List(a.Ctx())
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), list, func() string {
			return a.Theme.TerminalTable(list, time.Now())
		})
	},
}

var terminalsCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a terminal on the server without placing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		if a == nil {
			return errAppNotInitialized
		}
		spec := entity.TerminalSpec{
			Name:        args[0],
			Cols:        termCols,
			Rows:        termRows,
			WorkingDir:  termCwd,
			WorkspaceID: entity.WorkspaceID(termWorkspace),
		}.WithDefaults()
		if err := spec.Validate(); err != nil {
			return err
		}
		term, err := a.Terminals.Create(a.Ctx(), spec)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), term, func() string {
			return a.Theme.RenderSuccess("created terminal %s (%s)", term.Name, term.ID)
		})
	},
}

var terminalsShowCmd = &cobra.Command{
	Use:   "show TERMINAL_ID",
	Short: "Show one terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		if a == nil {
			return errAppNotInitialized
		}
		term, err := a.Terminals.Get(a.Ctx(), entity.TerminalID(args[0]))
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), term, func() string {
			return a.Theme.TerminalTable([]*entity.Terminal{term}, time.Now())
		})
	},
}

var terminalsRenameCmd = &cobra.Command{
	Use:   "rename TERMINAL_ID NAME",
	Short: "Rename a terminal and relabel its tab",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := startedApp()
		if err != nil {
			return err
		}
		term, err := a.Coordinator.RenameTerminal(a.Ctx(), entity.TerminalID(args[0]), args[1])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), term, func() string {
			return a.Theme.RenderSuccess("renamed %s to %s", term.ID, term.Name)
		})
	},
}

var terminalsPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a terminal with the quick switcher",
	Long: `Open the quick switcher and pick a terminal by fuzzy search.

The picked terminal's tab is opened or activated. With --split the pane
showing --source is split instead and the picked terminal fills the new pane.
Dismissing the switcher cancels the split.`,
	Args: cobra.NoArgs,
	RunE: runTerminalsPick,
}

func runTerminalsPick(cmd *cobra.Command, _ []string) error {
	a, err := startedApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	log := logging.FromContext(ctx)

	title := "Open terminal"
	if pickSplit != "" {
		direction, err := entity.ParseOrientation(pickSplit)
		if err != nil {
			return err
		}
		if pickSource == "" {
			return errors.New("--split needs --source")
		}
		placement := entity.PlaceAfter
		if pickBefore {
			placement = entity.PlaceBefore
		}
		if err := a.Coordinator.RequestSplit(ctx, entity.TerminalID(pickSource), direction, placement); err != nil {
			return err
		}
		title = fmt.Sprintf("Split %s %s", pickSource, direction)
	}

	final, err := tea.NewProgram(
		model.NewSwitcherModel(ctx, a.Theme, a.Terminals, title),
		tea.WithOutput(cmd.ErrOrStderr()),
	).Run()
	if err != nil {
		a.Coordinator.CancelPendingSplit(ctx)
		return fmt.Errorf("quick switcher: %w", err)
	}

	m, ok := final.(model.SwitcherModel)
	if !ok {
		return errors.New("quick switcher: unexpected model")
	}
	if m.Err() != nil {
		a.Coordinator.CancelPendingSplit(ctx)
		return m.Err()
	}
	term, picked := m.Selected()
	if !picked {
		if a.Coordinator.CancelPendingSplit(ctx) {
			log.Debug().Msg("pending split canceled")
		}
		return nil
	}

	res, err := a.Coordinator.SelectTerminal(ctx, term.ID, term.Name)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), map[string]any{
		"terminal_id": term.ID,
		"split":       res.Split,
		"new_pane_id": res.NewPaneID,
		"tab_id":      res.TabID,
	}, func() string {
		if res.Split {
			return a.Theme.RenderSuccess("%s placed in new pane %s", term.Name, res.NewPaneID)
		}
		return a.Theme.RenderSuccess("%s active in tab %s", term.Name, res.TabID)
	})
}

func init() {
	rootCmd.AddCommand(terminalsCmd)
	terminalsCmd.AddCommand(
		terminalsListCmd,
		terminalsShowCmd,
		terminalsCreateCmd,
		terminalsRenameCmd,
		terminalsPickCmd,
	)

	f := terminalsCreateCmd.Flags()
	f.IntVar(&termCols, "cols", 0, "columns")
	f.IntVar(&termRows, "rows", 0, "rows")
	f.StringVar(&termCwd, "cwd", "", "working directory")
	f.StringVar(&termWorkspace, "workspace", "", "owning workspace")

	f = terminalsPickCmd.Flags()
	f.StringVar(&pickSplit, "split", "", "split direction: horizontal or vertical")
	f.StringVar(&pickSource, "source", "", "terminal whose pane is split")
	f.BoolVar(&pickBefore, "before", false, "place the picked terminal left of or above the source")
}
