package pipeline

import (
	"github.com/okian/boxscore/internal/adapters/corpus"
	"github.com/okian/boxscore/internal/adapters/feed"
	"github.com/okian/boxscore/pkg/logger"
)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithFetcher sets the feed the pipeline reads from. Required.
func WithFetcher(f feed.Fetcher) Option {
	return func(o *Orchestrator) {
		o.fetcher = f
	}
}

// WithWriter sets the corpus the pipeline writes to. Required.
func WithWriter(w corpus.Writer) Option {
	return func(o *Orchestrator) {
		o.writer = w
	}
}

// WithLogger overrides the default named logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSeasonDays sets how many days make up a season.
func WithSeasonDays(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.seasonDays = n
		}
	}
}

// WithTeamBatchSize sets how many team statsheets feed one player
// season stats fetch.
func WithTeamBatchSize(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.teamBatchSize = n
		}
	}
}

// WithDayConcurrency bounds how many days run at once.
func WithDayConcurrency(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.dayConcurrency = n
		}
	}
}

// WithWriteConcurrency bounds concurrent record writes per branch.
func WithWriteConcurrency(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.writeConcurrency = n
		}
	}
}
