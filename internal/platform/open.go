package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/marsnote/pkg/adapters/fs"
	"github.com/aretw0/marsnote/pkg/autosave"
	"github.com/aretw0/marsnote/pkg/core"
)

// Open bootstraps a session: it resolves the application-data directory,
// loads the settings, then loads the save file or seeds a new library when
// none exists. A save file that exists but cannot be read is returned as a
// *core.LoadError and nothing is written.
func Open(ctx context.Context, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cfg, err := resolveEnv(o)
	if err != nil {
		return nil, err
	}

	appDir := cfg.Home
	if o.appDir != "" {
		appDir = o.appDir
	}
	useTemp := o.forceTemp || (IsDevRun() && o.appDir == "")
	appDir = ResolveAppDir(appDir, useTemp)
	if useTemp {
		logger.Warn("running in SAFE MODE (Dev/Test)", "dir", appDir)
	}
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create application directory: %w", err)
	}

	autostartDir := cfg.AutostartDir
	if o.autostartDir != "" {
		autostartDir = o.autostartDir
	}
	registrar := o.registrar
	if registrar == nil {
		registrar = fs.NewAutostartRegistrar(appDir, autostartDir, "", logger)
	}

	settingsStore := fs.NewSettingsStore(appDir, registrar, logger)
	settings := settingsStore.Load(ctx)
	saveDir := settings.SaveFileLocation()
	if !fs.DirExists(saveDir) {
		logger.Warn("save directory missing, using default", "dir", saveDir, "default", appDir)
		saveDir = appDir
		settings.SetSaveFileLocation(appDir)
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{Logger: logger})
	}

	restarter := o.restarter
	if restarter == nil {
		restarter = core.RestarterFunc(func(context.Context) error {
			logger.Info("restart required to use the new save directory")
			return nil
		})
	}

	s := &Session{
		appDir:        appDir,
		saveDir:       saveDir,
		settings:      settings,
		repo:          repo,
		settingsStore: settingsStore,
		stateStore:    fs.NewStateStore(appDir, logger),
		registrar:     registrar,
		restarter:     restarter,
		logger:        logger,
	}

	savePath := s.SavePath()
	if repo.FolderContainsSaveFile(saveDir) {
		lib, err := repo.LoadProfiles(ctx, savePath)
		if err != nil {
			return nil, err
		}
		s.lib = lib
	} else {
		logger.Info("no save file found, creating one", "path", savePath)
		s.lib = core.Seed()
		s.firstRun = true
		if err := repo.SaveProfiles(ctx, s.lib, savePath); err != nil {
			return nil, err
		}
	}

	s.lastState = s.stateStore.Load(ctx)

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.scheduler = autosave.New(autosave.SaverFunc(s.persist),
		autosave.WithUnit(o.autoSaveUnit),
		autosave.WithLogger(logger),
	)
	if err := s.scheduler.Start(runCtx, settings.AutoSave()); err != nil {
		cancel()
		return nil, err
	}

	logger.Debug("session opened", "dir", appDir, "path", savePath, "profiles", s.lib.Len())
	return s, nil
}

func resolveEnv(o *options) (Env, error) {
	if o.env != nil {
		return *o.env, nil
	}
	return LoadEnv()
}
