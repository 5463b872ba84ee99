package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/gridctl/internal/config"
	"github.com/vk/gridctl/internal/ctxlog"
	"github.com/vk/gridctl/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: the output writer for command results, an isolated logger for
// diagnostics, the populated command registry, and the loaded config model.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a registered,
// validated command tree. Command results go to outW; diagnostics go to errW.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the configuration model before the tree is built; command
	// modules capture the parts of it they need.
	cfgModel, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration model loaded.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(cfgModel, outW)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All command modules registered.", "count", len(modules))

	// A tree that fails validation is a mismatch between modules and the
	// registration contract, so we panic.
	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfgModel,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
