// Package cli wires the termify client: configuration, logging, the server
// API, layout storage and the workspace coordinator.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/cli/styles"
	"github.com/termify/termify/internal/domain/build"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/infrastructure/api"
	"github.com/termify/termify/internal/infrastructure/config"
	"github.com/termify/termify/internal/infrastructure/idgen"
	"github.com/termify/termify/internal/infrastructure/persistence/sqlite"
	"github.com/termify/termify/internal/infrastructure/snapshot"
	"github.com/termify/termify/internal/infrastructure/xdg"
	"github.com/termify/termify/internal/logging"
	"github.com/termify/termify/internal/ui/coordinator"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Paths     port.XDGPaths

	// Server resources
	Client    *api.Client
	Terminals *usecase.ManageTerminalsUseCase

	// Layout engine
	Coordinator *coordinator.WorkspaceCoordinator
	Workspaces  *usecase.ManageWorkspacesUseCase
	Layouts     repository.LayoutRepository
	panes       *usecase.ManagePanesUseCase

	configMgr  *config.Manager
	onApplied  []func(*config.Config)
	db         *sqlite.LazyDB
	snapshots  *snapshot.Service
	started    bool
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies. Nothing talks
// to the server or opens the database until a command needs it.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		},
	)
	if logErr != nil {
		logger = logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithToken(cfg.API.Token),
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("create api client: %w", err)
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)

	var layouts repository.LayoutRepository
	switch cfg.Layout.Store {
	case config.LayoutStoreRemote:
		layouts = client.Layouts()
	default:
		layouts = sqlite.NewLazyLayoutRepository(db)
	}
	logger.Debug().
		Str("api", client.BaseURL()).
		Str("layout_store", string(cfg.Layout.Store)).
		Str("db_path", cfg.Database.Path).
		Msg("cli app configured")

	terminals := usecase.NewManageTerminalsUseCase(client.Terminals())
	workspacesUC := usecase.NewManageWorkspacesUseCase(client.Workspaces(), layouts)
	panesUC := usecase.NewManagePanesUseCase(idgen.New("pane"))
	panesUC.SetUniqueTerminalPanes(cfg.Layout.UniqueTerminalPanes)
	snapshotUC := usecase.NewSnapshotLayoutUseCase(layouts)

	coord := coordinator.NewWorkspaceCoordinator(coordinator.WorkspaceCoordinatorConfig{
		WorkspacesUC:         workspacesUC,
		TerminalsUC:          terminals,
		PanesUC:              panesUC,
		TabsUC:               usecase.NewManageTabsUseCase(idgen.New("tab")),
		Drops:                usecase.NewDropZoneResolver(cfg.Layout.DropCenterFraction),
		SnapshotUC:           snapshotUC,
		RestoreUC:            usecase.NewRestoreLayoutUseCase(layouts),
		AppState:             sqlite.NewLazyAppStateRepository(db),
		RestoreLastWorkspace: cfg.Session.RestoreLastWorkspace,
	})

	snapshots := snapshot.NewService(snapshotUC, coord, cfg.Session.SnapshotIntervalMs)
	coord.OnLayoutChanged(snapshots.MarkDirty)

	palette := styles.DefaultPalette().WithOverrides(cfg.Appearance.AccentColor, cfg.Appearance.MutedColor)

	return &App{
		Config:      cfg,
		Theme:       styles.NewThemeFromPalette(palette),
		Paths:       xdg.New(),
		Client:      client,
		Terminals:   terminals,
		Coordinator: coord,
		Workspaces:  workspacesUC,
		Layouts:     layouts,
		panes:       panesUC,
		configMgr:   mgr,
		db:          db,
		snapshots:   snapshots,
		ctx:         ctx,
		logCleanup:  logCleanup,
	}, nil
}

// StartWorkspace activates the last used (or default) workspace and starts
// background layout saves. It is safe to call more than once.
func (a *App) StartWorkspace() error {
	if a.started {
		return nil
	}
	if err := a.Coordinator.Start(a.ctx); err != nil {
		return err
	}
	a.snapshots.Start(a.ctx)
	a.started = true
	return nil
}

// WatchConfig applies config file edits to the running layout engine.
func (a *App) WatchConfig() error {
	if a.configMgr == nil {
		return errors.New("configuration manager unavailable")
	}
	a.configMgr.OnConfigChange(a.applyConfig)
	return a.configMgr.Watch()
}

func (a *App) applyConfig(cfg *config.Config) {
	logging.FromContext(a.ctx).Info().
		Float64("drop_center_fraction", cfg.Layout.DropCenterFraction).
		Bool("unique_terminal_panes", cfg.Layout.UniqueTerminalPanes).
		Msg("configuration reloaded")
	a.Coordinator.SetDropCenterFraction(cfg.Layout.DropCenterFraction)
	a.panes.SetUniqueTerminalPanes(cfg.Layout.UniqueTerminalPanes)
	a.Config = cfg
	for _, fn := range a.onApplied {
		fn(cfg)
	}
}

// OnConfigApplied registers a callback run after a reloaded config took effect.
func (a *App) OnConfigApplied(fn func(*config.Config)) {
	a.onApplied = append(a.onApplied, fn)
}

// ConfigFile returns the path of the config file in use.
func (a *App) ConfigFile() string {
	if a.configMgr != nil {
		if path := a.configMgr.GetConfigFile(); path != "" {
			return path
		}
	}
	path, _ := config.GetConfigFile()
	return path
}

// Close flushes the layout and releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.started {
		if err := a.snapshots.Stop(a.ctx); err != nil {
			errs = append(errs, fmt.Errorf("save layout: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, defaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return mgr, defaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}

func defaultConfig() *config.Config {
	cfg := config.DefaultConfig()
	if path, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = path
	}
	return cfg
}
