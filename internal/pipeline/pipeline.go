// Package pipeline drives the four-tier retrieval graph for a season:
// games, game statsheets, team statsheets, player season stats. Days
// run concurrently under one scope; within a day the stats branch and
// the game-write branch run concurrently once the games response
// exists. The first failure anywhere cancels the remaining network
// work and becomes the run's result, while records already fetched
// are still persisted by their own branch.
package pipeline

import (
	"fmt"
	"sync/atomic"

	"github.com/okian/boxscore/internal/adapters/corpus"
	"github.com/okian/boxscore/internal/adapters/feed"
	"github.com/okian/boxscore/internal/domain/types"
	"github.com/okian/boxscore/pkg/logger"
)

const (
	defaultSeasonDays       = 99
	defaultTeamBatchSize    = 5
	defaultDayConcurrency   = 16
	defaultWriteConcurrency = 32
)

// Orchestrator owns one season run: a shared fetcher, a shared writer,
// and the concurrency knobs. All methods are safe for concurrent use.
type Orchestrator struct {
	fetcher feed.Fetcher
	writer  corpus.Writer
	log     logger.Logger

	seasonDays       int
	teamBatchSize    int
	dayConcurrency   int
	writeConcurrency int

	season    atomic.Int64
	started   atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	games     atomic.Int64
	players   atomic.Int64
}

// New constructs an orchestrator. A fetcher and a writer are required;
// everything else has defaults.
func New(opts ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		seasonDays:       defaultSeasonDays,
		teamBatchSize:    defaultTeamBatchSize,
		dayConcurrency:   defaultDayConcurrency,
		writeConcurrency: defaultWriteConcurrency,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.fetcher == nil {
		return nil, fmt.Errorf("%w: no fetcher", ErrNotConfigured)
	}

	if o.writer == nil {
		return nil, fmt.Errorf("%w: no writer", ErrNotConfigured)
	}

	if o.log == nil {
		o.log = logger.Named("pipeline")
	}

	return o, nil
}

// Progress returns a point-in-time snapshot of the current run.
func (o *Orchestrator) Progress() types.Progress {
	return types.Progress{
		Season:         int(o.season.Load()),
		TotalDays:      o.seasonDays,
		StartedDays:    int(o.started.Load()),
		CompletedDays:  int(o.completed.Load()),
		FailedDays:     int(o.failed.Load()),
		GamesWritten:   o.games.Load(),
		PlayersWritten: o.players.Load(),
	}
}
