package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	corpus "github.com/okian/boxscore/internal/adapters/corpus"
	feed "github.com/okian/boxscore/internal/adapters/feed"
	pipeline "github.com/okian/boxscore/internal/pipeline"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseSeason(t *testing.T) {
	convey.Convey("Given the CLI season argument", t, func() {
		convey.Convey("When it is a positive number", func() {
			cases := map[string]int{"1": 0, "2": 1, "12": 11}
			for arg, want := range cases {
				season, err := pipeline.ParseSeason(arg)
				convey.So(err, convey.ShouldBeNil)
				convey.So(season, convey.ShouldEqual, want)
			}
		})

		convey.Convey("When it is missing or malformed", func() {
			for _, arg := range []string{"", "abc", "1.5", "0", "-3"} {
				_, err := pipeline.ParseSeason(arg)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, pipeline.ErrBadSeason), convey.ShouldBeTrue)
			}
		})
	})
}

func TestOrchestratorConstruction(t *testing.T) {
	convey.Convey("Given the orchestrator constructor", t, func() {
		fake := newFakeFeed()
		writer := corpus.NewInMemory()

		convey.Convey("When no fetcher is supplied", func() {
			_, err := pipeline.New(pipeline.WithWriter(writer))
			convey.So(errors.Is(err, pipeline.ErrNotConfigured), convey.ShouldBeTrue)
		})

		convey.Convey("When no writer is supplied", func() {
			_, err := pipeline.New(pipeline.WithFetcher(fake))
			convey.So(errors.Is(err, pipeline.ErrNotConfigured), convey.ShouldBeTrue)
		})

		convey.Convey("When both are supplied", func() {
			orch, err := pipeline.New(pipeline.WithFetcher(fake), pipeline.WithWriter(writer))
			convey.So(err, convey.ShouldBeNil)
			convey.So(orch, convey.ShouldNotBeNil)
		})
	})
}

func TestSeasonCancellation(t *testing.T) {
	convey.Convey("Given a season where day 2's games fetch fails", t, func() {
		fake := newFakeFeed()
		fake.failGames = func(day int) error {
			if day == 2 {
				return fmt.Errorf("%w: feed went dark", feed.ErrTransport)
			}

			return nil
		}
		writer := corpus.NewInMemory()
		orch := newOrchestrator(t, fake, writer,
			pipeline.WithSeasonDays(10),
			pipeline.WithDayConcurrency(1))

		convey.Convey("When the season runs days one at a time", func() {
			err := orch.Run(context.Background(), 0)

			convey.Convey("Then the first failure is the run's result", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, feed.ErrTransport), convey.ShouldBeTrue)
			})

			convey.Convey("Then no day after the failure begins", func() {
				convey.So(fake.Calls(), convey.ShouldResemble, []string{
					"games 0/0",
					"games 0/1",
					"games 0/2",
				})
			})

			convey.Convey("Then the snapshot shows the aborted run", func() {
				progress := orch.Progress()
				convey.So(progress.StartedDays, convey.ShouldEqual, 3)
				convey.So(progress.CompletedDays, convey.ShouldEqual, 2)
				convey.So(progress.FailedDays, convey.ShouldEqual, 1)
				convey.So(progress.Done(), convey.ShouldBeFalse)
			})
		})
	})
}

func TestSeasonAcrossDays(t *testing.T) {
	convey.Convey("Given games scheduled on two separate days", t, func() {
		fake := newFakeFeed()
		twoGameDay(fake, 0)
		twoGameDay(fake, 3)
		writer := corpus.NewInMemory()
		orch := newOrchestrator(t, fake, writer, pipeline.WithSeasonDays(5))

		convey.Convey("When the season runs", func() {
			err := orch.Run(context.Background(), 1)

			convey.Convey("Then both days' records are written under their own day segment", func() {
				convey.So(err, convey.ShouldBeNil)
				_, ok := writer.Get("games/0/h1")
				convey.So(ok, convey.ShouldBeTrue)
				_, ok = writer.Get("games/3/h1")
				convey.So(ok, convey.ShouldBeTrue)
				_, ok = writer.Get("players/p1/0")
				convey.So(ok, convey.ShouldBeTrue)
				_, ok = writer.Get("players/p1/3")
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(writer.Count(), convey.ShouldEqual, 16)
			})

			convey.Convey("Then the snapshot carries the season index", func() {
				progress := orch.Progress()
				convey.So(progress.Season, convey.ShouldEqual, 1)
				convey.So(progress.CompletedDays, convey.ShouldEqual, 5)
				convey.So(progress.Done(), convey.ShouldBeTrue)
			})
		})
	})
}
