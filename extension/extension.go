// Package extension provides the Forge extension adapter for Tycoon.
//
// It implements the forge.Extension interface to integrate Tycoon
// into a Forge application with automatic dependency discovery,
// DI registration, and lifecycle management.
//
// Configuration can be provided programmatically via Option functions
// or via YAML configuration files under "extensions.tycoon" or "tycoon" keys.
package extension

import (
	"context"
	"errors"

	"github.com/xraph/forge"
	"github.com/xraph/vessel"

	tycoon "github.com/xraph/tycoon"
	"github.com/xraph/tycoon/store"
	"github.com/xraph/tycoon/store/memory"
)

// ExtensionName is the name registered with Forge.
const ExtensionName = "tycoon"

// ExtensionDescription is the human-readable description.
const ExtensionDescription = "Per-account slot inventory and time-based earnings engine"

// ExtensionVersion is the semantic version.
const ExtensionVersion = "0.1.0"

// Ensure Extension implements forge.Extension at compile time.
var _ forge.Extension = (*Extension)(nil)

// Extension adapts Tycoon as a Forge extension.
type Extension struct {
	*forge.BaseExtension

	config     Config
	engine     *tycoon.Engine
	store      store.Store
	engineOpts []tycoon.Option
}

// New creates a new Tycoon Forge extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{
		BaseExtension: forge.NewBaseExtension(ExtensionName, ExtensionVersion, ExtensionDescription),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Engine returns the underlying Tycoon engine.
// This is nil until Register is called.
func (e *Extension) Engine() *tycoon.Engine { return e.engine }

// Register implements [forge.Extension]. It loads configuration,
// initializes the engine, and registers it in the DI container.
func (e *Extension) Register(fapp forge.App) error {
	if err := e.BaseExtension.Register(fapp); err != nil {
		return err
	}

	if err := e.loadConfiguration(); err != nil {
		return err
	}

	// Use memory store if no store was provided programmatically.
	if e.store == nil {
		e.store = memory.New()
	}

	// Build engine options from resolved config.
	opts := e.buildEngineOpts()

	eng := tycoon.New(e.store, opts...)
	e.engine = eng

	return vessel.Provide(fapp.Container(), func() (*tycoon.Engine, error) {
		return e.engine, nil
	})
}

// Start implements [forge.Extension].
func (e *Extension) Start(ctx context.Context) error {
	if e.engine == nil {
		return errors.New("tycoon: extension not initialized")
	}

	if !e.config.DisableMigrate {
		if err := e.engine.Start(ctx); err != nil {
			return err
		}
	}

	e.MarkStarted()
	return nil
}

// Stop implements [forge.Extension].
func (e *Extension) Stop(_ context.Context) error {
	if e.engine != nil {
		if err := e.engine.Stop(); err != nil {
			e.MarkStopped()
			return err
		}
	}
	e.MarkStopped()
	return nil
}

// Health implements [forge.Extension].
func (e *Extension) Health(ctx context.Context) error {
	if e.store == nil {
		return errors.New("tycoon: store not initialized")
	}
	return e.store.Ping(ctx)
}

// buildEngineOpts constructs tycoon.Option values from the resolved config.
func (e *Extension) buildEngineOpts() []tycoon.Option {
	opts := make([]tycoon.Option, 0, len(e.engineOpts)+1)

	if e.config.PokeInterval > 0 || e.config.PokeBatchSize > 0 {
		interval := e.config.PokeInterval
		batchSize := e.config.PokeBatchSize
		defaults := DefaultConfig()
		if interval == 0 {
			interval = defaults.PokeInterval
		}
		if batchSize == 0 {
			batchSize = defaults.PokeBatchSize
		}
		opts = append(opts, tycoon.WithPokeConfig(interval, batchSize))
	}

	// Append any pass-through engine options.
	opts = append(opts, e.engineOpts...)

	return opts
}

// --- Config Loading (mirrors grove/shield extension pattern) ---

// loadConfiguration loads config from YAML files or programmatic sources.
func (e *Extension) loadConfiguration() error {
	programmaticConfig := e.config

	// Try loading from config file.
	fileConfig, configLoaded := e.tryLoadFromConfigFile()

	if !configLoaded {
		if programmaticConfig.RequireConfig {
			return errors.New("tycoon: configuration is required but not found in config files; " +
				"ensure 'extensions.tycoon' or 'tycoon' key exists in your config")
		}

		// Use programmatic config merged with defaults.
		e.config = e.mergeWithDefaults(programmaticConfig)
	} else {
		// Config loaded from YAML -- merge with programmatic options.
		e.config = e.mergeConfigurations(fileConfig, programmaticConfig)
	}

	e.Logger().Debug("tycoon: configuration loaded",
		forge.F("disable_migrate", e.config.DisableMigrate),
		forge.F("poke_interval", e.config.PokeInterval),
		forge.F("poke_batch_size", e.config.PokeBatchSize),
	)

	return nil
}

// tryLoadFromConfigFile attempts to load config from YAML files.
func (e *Extension) tryLoadFromConfigFile() (Config, bool) {
	cm := e.App().Config()
	var cfg Config

	// Try "extensions.tycoon" first (namespaced pattern).
	if cm.IsSet("extensions.tycoon") {
		if err := cm.Bind("extensions.tycoon", &cfg); err == nil {
			e.Logger().Debug("tycoon: loaded config from file",
				forge.F("key", "extensions.tycoon"),
			)
			return cfg, true
		}
		e.Logger().Warn("tycoon: failed to bind extensions.tycoon config",
			forge.F("error", "bind failed"),
		)
	}

	// Try legacy "tycoon" key.
	if cm.IsSet("tycoon") {
		if err := cm.Bind("tycoon", &cfg); err == nil {
			e.Logger().Debug("tycoon: loaded config from file",
				forge.F("key", "tycoon"),
			)
			return cfg, true
		}
		e.Logger().Warn("tycoon: failed to bind tycoon config",
			forge.F("error", "bind failed"),
		)
	}

	return Config{}, false
}

// mergeWithDefaults fills zero-valued fields with defaults.
func (e *Extension) mergeWithDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if cfg.PokeInterval == 0 {
		cfg.PokeInterval = defaults.PokeInterval
	}
	if cfg.PokeBatchSize == 0 {
		cfg.PokeBatchSize = defaults.PokeBatchSize
	}
	return cfg
}

// mergeConfigurations merges YAML config with programmatic options.
// YAML config takes precedence for most fields; programmatic bool flags fill gaps.
func (e *Extension) mergeConfigurations(yamlConfig, programmaticConfig Config) Config {
	// Programmatic bool flags override when true.
	if programmaticConfig.DisableMigrate {
		yamlConfig.DisableMigrate = true
	}

	// Duration/int fields: YAML takes precedence, programmatic fills gaps.
	if yamlConfig.PokeInterval == 0 && programmaticConfig.PokeInterval != 0 {
		yamlConfig.PokeInterval = programmaticConfig.PokeInterval
	}
	if yamlConfig.PokeBatchSize == 0 && programmaticConfig.PokeBatchSize != 0 {
		yamlConfig.PokeBatchSize = programmaticConfig.PokeBatchSize
	}

	// Fill remaining zeros with defaults.
	return e.mergeWithDefaults(yamlConfig)
}
