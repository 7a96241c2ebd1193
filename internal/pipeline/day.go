package pipeline

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/okian/boxscore/internal/adapters/corpus"
	"github.com/okian/boxscore/internal/domain/batch"
	"github.com/okian/boxscore/internal/domain/model"
	"github.com/okian/boxscore/pkg/logger"
	"github.com/okian/boxscore/pkg/metrics"
)

// runDay executes one day's pipeline. After the games fetch the stats
// branch and the game-write branch run concurrently; the day completes
// only when both have finished and fails with the first error either
// reports.
func (o *Orchestrator) runDay(ctx context.Context, season, day int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	o.started.Add(1)
	metrics.RecordDayStarted()
	o.log.Debug(ctx, "fetching day",
		logger.Int("season", season),
		logger.Int("day", day))

	games, err := o.fetcher.Games(ctx, season, day)
	if err != nil {
		return o.dayFailed(ctx, season, day, err)
	}

	if len(games) == 0 {
		o.completed.Add(1)
		metrics.RecordDayCompleted()
		o.log.Debug(ctx, "no games scheduled",
			logger.Int("season", season),
			logger.Int("day", day))

		return nil
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return o.runStats(gctx, day, games)
	})
	grp.Go(func() error {
		return o.writeGames(ctx, day, games)
	})

	if err := grp.Wait(); err != nil {
		return o.dayFailed(ctx, season, day, err)
	}

	o.completed.Add(1)
	metrics.RecordDayCompleted()
	o.log.Info(ctx, "day complete",
		logger.Int("season", season),
		logger.Int("day", day),
		logger.Int("games", len(games)))

	return nil
}

// runStats walks the dependent tiers below games: game statsheets,
// team statsheets, then one concurrent player fetch-and-write branch
// per team-statsheet batch.
func (o *Orchestrator) runStats(ctx context.Context, day int, games []model.GameUpdate) error {
	sheets, err := o.fetcher.GameStatsheets(ctx, batch.StatsheetIDs(games))
	if err != nil {
		return err
	}

	teams, err := o.fetcher.TeamStatsheets(ctx, batch.TeamStatsIDs(sheets))
	if err != nil {
		return err
	}

	grp, gctx := errgroup.WithContext(ctx)
	for _, part := range batch.Partition(teams, o.teamBatchSize) {
		grp.Go(func() error {
			return o.runPlayerBatch(gctx, day, part)
		})
	}

	return grp.Wait()
}

// runPlayerBatch fetches the player season stats for one team-statsheet
// batch and persists each record. Once the fetch has succeeded the
// writes run to completion regardless of sibling failures.
func (o *Orchestrator) runPlayerBatch(ctx context.Context, day int, sheets []model.TeamStatsheet) error {
	players, err := o.fetcher.PlayerSeasonStats(ctx, batch.PlayerIDs(sheets))
	if err != nil {
		return err
	}

	metrics.RecordPlayerBatch()

	var grp errgroup.Group
	grp.SetLimit(o.writeConcurrency)

	for _, player := range players {
		grp.Go(func() error {
			segments := []string{player.PlayerID, strconv.Itoa(day)}
			if err := o.writer.Write(ctx, corpus.CategoryPlayers, segments, player); err != nil {
				return err
			}

			o.players.Add(1)

			return nil
		})
	}

	return grp.Wait()
}

// writeGames persists every fetched game for the day. The branch does
// not watch the stats branch: records in hand are written even when a
// sibling tier has already failed.
func (o *Orchestrator) writeGames(ctx context.Context, day int, games []model.GameUpdate) error {
	var grp errgroup.Group
	grp.SetLimit(o.writeConcurrency)

	for _, game := range games {
		grp.Go(func() error {
			segments := []string{strconv.Itoa(day), game.HomeTeam}
			if err := o.writer.Write(ctx, corpus.CategoryGames, segments, game); err != nil {
				return err
			}

			o.games.Add(1)

			return nil
		})
	}

	return grp.Wait()
}

func (o *Orchestrator) dayFailed(ctx context.Context, season, day int, err error) error {
	o.failed.Add(1)
	metrics.RecordDayFailed()
	o.log.Error(ctx, "day failed",
		logger.Int("season", season),
		logger.Int("day", day),
		logger.Error(err))

	return err
}
