// Package config defines process configuration and loading for boxscore.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment overrides on top.
// - External errors must be wrapped via this package's sentinel kinds.
package config

import (
	"time"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the status listener address, e.g. ":9091".
	Addr string `koanf:"addr"`

	// StatusEnabled toggles the status listener for the duration of a run.
	StatusEnabled bool `koanf:"status_enabled"`

	// BaseURL is the upstream data service root, without a trailing slash.
	BaseURL string `koanf:"base_url"`

	// OutputDir is the root of the written corpus.
	OutputDir string `koanf:"output_dir"`

	// SeasonDays is the number of days fetched per season, starting at day 0.
	SeasonDays int `koanf:"season_days"`

	// TeamBatchSize sets how many team statsheets feed one player fetch.
	TeamBatchSize int `koanf:"team_batch_size"`

	// DayConcurrency bounds how many day pipelines run at once.
	DayConcurrency int `koanf:"day_concurrency"`

	// WriteConcurrency bounds concurrent record writes within one day.
	WriteConcurrency int `koanf:"write_concurrency"`

	// FetchConcurrency bounds in-flight upstream requests across all days.
	FetchConcurrency int `koanf:"fetch_concurrency"`

	// HTTPTimeout is the per-request upstream timeout.
	HTTPTimeout time.Duration `koanf:"http_timeout"`
}

// Defaults for the pipeline tunables.
const (
	defaultSeasonDays       = 99
	defaultTeamBatchSize    = 5
	defaultDayConcurrency   = 16
	defaultWriteConcurrency = 32
	defaultFetchConcurrency = 64
	defaultHTTPTimeout      = 30 * time.Second
)

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9091",
		StatusEnabled:    true,
		BaseURL:          "https://www.blaseball.com/database",
		OutputDir:        "out",
		SeasonDays:       defaultSeasonDays,
		TeamBatchSize:    defaultTeamBatchSize,
		DayConcurrency:   defaultDayConcurrency,
		WriteConcurrency: defaultWriteConcurrency,
		FetchConcurrency: defaultFetchConcurrency,
		HTTPTimeout:      defaultHTTPTimeout,
	}
}
