package extension

import (
	"time"

	tycoon "github.com/xraph/tycoon"
	"github.com/xraph/tycoon/plugin"
	"github.com/xraph/tycoon/store"
)

// Option configures the Tycoon Forge extension.
type Option func(*Extension)

// WithStore sets the store for the engine.
func WithStore(s store.Store) Option {
	return func(e *Extension) {
		e.store = s
	}
}

// WithEngineOption passes a tycoon.Option through to the underlying engine.
func WithEngineOption(opt tycoon.Option) Option {
	return func(e *Extension) {
		e.engineOpts = append(e.engineOpts, opt)
	}
}

// WithPlugin registers a tycoon plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Extension) {
		e.engineOpts = append(e.engineOpts, tycoon.WithPlugin(p))
	}
}

// WithConfig sets the Forge extension configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extension) { e.config = cfg }
}

// WithDisableMigrate prevents auto-migration on start.
func WithDisableMigrate() Option {
	return func(e *Extension) { e.config.DisableMigrate = true }
}

// WithRequireConfig requires config to be present in YAML files.
// If true and no config is found, Register returns an error.
func WithRequireConfig(require bool) Option {
	return func(e *Extension) { e.config.RequireConfig = require }
}

// WithPokeInterval sets how frequently the due-account sweep runs.
func WithPokeInterval(d time.Duration) Option {
	return func(e *Extension) { e.config.PokeInterval = d }
}

// WithPokeBatchSize sets the maximum number of due accounts per sweep.
func WithPokeBatchSize(size int) Option {
	return func(e *Extension) { e.config.PokeBatchSize = size }
}
