package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/okian/boxscore/pkg/logger"
)

// ParseSeason converts the CLI season argument, a 1-based positive
// integer, into the 0-based index the remote service expects.
func ParseSeason(arg string) (int, error) {
	if arg == "" {
		return 0, fmt.Errorf("%w: season number required", ErrBadSeason)
	}

	season, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadSeason, arg)
	}

	if season < 1 {
		return 0, fmt.Errorf("%w: season must be positive, got %d", ErrBadSeason, season)
	}

	return season - 1, nil
}

// Run executes every day of the season concurrently and returns the
// first error any day reported, or nil once all days completed. On the
// first failure the remaining days' network work is cancelled; the run
// still waits for every started day to finish.
func (o *Orchestrator) Run(ctx context.Context, season int) error {
	o.season.Store(int64(season))
	o.log.Info(ctx, "season run starting",
		logger.Int("season", season),
		logger.Int("days", o.seasonDays))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.dayConcurrency)

	for day := 0; day < o.seasonDays; day++ {
		grp.Go(func() error {
			return o.runDay(gctx, season, day)
		})
	}

	if err := grp.Wait(); err != nil {
		o.log.Error(ctx, "season run failed",
			logger.Int("season", season),
			logger.Error(err))

		return err
	}

	o.log.Info(ctx, "season run complete",
		logger.Int("season", season),
		logger.Int64("games_written", o.games.Load()),
		logger.Int64("players_written", o.players.Load()))

	return nil
}
