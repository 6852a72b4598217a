package extension

import "time"

// Config holds the Tycoon extension configuration.
// Fields can be set programmatically via Option functions or loaded from
// YAML configuration files (under "extensions.tycoon" or "tycoon" keys).
type Config struct {
	// DisableMigrate prevents auto-migration on start.
	DisableMigrate bool `json:"disable_migrate" mapstructure:"disable_migrate" yaml:"disable_migrate"`

	// PokeInterval is how frequently the background worker sweeps due
	// accounts (default: 1m).
	PokeInterval time.Duration `json:"poke_interval" mapstructure:"poke_interval" yaml:"poke_interval"`

	// PokeBatchSize is the maximum number of due accounts processed per
	// sweep (default: 100).
	PokeBatchSize int `json:"poke_batch_size" mapstructure:"poke_batch_size" yaml:"poke_batch_size"`

	// RequireConfig requires config to be present in YAML files.
	// If true and no config is found, Register returns an error.
	RequireConfig bool `json:"-" yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PokeInterval:  time.Minute,
		PokeBatchSize: 100,
	}
}
