package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	corpus "github.com/okian/boxscore/internal/adapters/corpus"
	feed "github.com/okian/boxscore/internal/adapters/feed"
	model "github.com/okian/boxscore/internal/domain/model"
	pipeline "github.com/okian/boxscore/internal/pipeline"
	"github.com/smartystreets/goconvey/convey"
)

func TestDayRequestOrdering(t *testing.T) {
	convey.Convey("Given a one-day season with two games and four team statsheets", t, func() {
		fake := newFakeFeed()
		twoGameDay(fake, 0)
		writer := corpus.NewInMemory()
		orch := newOrchestrator(t, fake, writer,
			pipeline.WithSeasonDays(1),
			pipeline.WithTeamBatchSize(2))

		convey.Convey("When the season runs", func() {
			err := orch.Run(context.Background(), 0)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the requests follow the dependency order", func() {
				calls := fake.Calls()
				convey.So(len(calls), convey.ShouldEqual, 5)
				convey.So(calls[0], convey.ShouldEqual, "games 0/0")
				convey.So(calls[1], convey.ShouldEqual, "gameStatsheets s1,s2")
				convey.So(calls[2], convey.ShouldEqual, "teamStatsheets as1,hs1,as2,hs2")

				batches := []string{calls[3], calls[4]}
				sort.Strings(batches)
				convey.So(batches, convey.ShouldResemble, []string{
					"playerSeasonStats ps1,ps2,ps3",
					"playerSeasonStats ps4,ps5,ps6",
				})
			})

			convey.Convey("Then every record lands at its addressed path", func() {
				convey.So(writer.Count(), convey.ShouldEqual, 8)
				_, ok := writer.Get("games/0/h1")
				convey.So(ok, convey.ShouldBeTrue)
				_, ok = writer.Get("games/0/h2")
				convey.So(ok, convey.ShouldBeTrue)
				_, ok = writer.Get("players/p1/0")
				convey.So(ok, convey.ShouldBeTrue)
				_, ok = writer.Get("players/p6/0")
				convey.So(ok, convey.ShouldBeTrue)
			})

			convey.Convey("Then the progress snapshot accounts for everything", func() {
				progress := orch.Progress()
				convey.So(progress.TotalDays, convey.ShouldEqual, 1)
				convey.So(progress.CompletedDays, convey.ShouldEqual, 1)
				convey.So(progress.FailedDays, convey.ShouldEqual, 0)
				convey.So(progress.GamesWritten, convey.ShouldEqual, 2)
				convey.So(progress.PlayersWritten, convey.ShouldEqual, 6)
				convey.So(progress.Done(), convey.ShouldBeTrue)
			})
		})
	})
}

func TestDayWithoutGames(t *testing.T) {
	convey.Convey("Given a day with no games scheduled", t, func() {
		fake := newFakeFeed()
		writer := corpus.NewInMemory()
		orch := newOrchestrator(t, fake, writer, pipeline.WithSeasonDays(1))

		convey.Convey("When the season runs", func() {
			err := orch.Run(context.Background(), 0)

			convey.Convey("Then the day succeeds with no downstream fetches and no writes", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(fake.Calls(), convey.ShouldResemble, []string{"games 0/0"})
				convey.So(writer.Count(), convey.ShouldEqual, 0)
				convey.So(orch.Progress().CompletedDays, convey.ShouldEqual, 1)
			})
		})
	})
}

func TestDayWithoutTeamStatsheets(t *testing.T) {
	convey.Convey("Given a day whose team statsheets come back empty", t, func() {
		fake := newFakeFeed()
		fake.gamesByDay[0] = []model.GameUpdate{
			{ID: "g1", Statsheet: "s1", AwayTeam: "a1", HomeTeam: "h1"},
		}
		fake.sheetsByID["s1"] = model.GameStatsheet{AwayTeamStats: "as1", HomeTeamStats: "hs1"}
		writer := corpus.NewInMemory()
		orch := newOrchestrator(t, fake, writer, pipeline.WithSeasonDays(1))

		convey.Convey("When the season runs", func() {
			err := orch.Run(context.Background(), 0)

			convey.Convey("Then no player batch is fetched and only the game is written", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(fake.Calls(), convey.ShouldResemble, []string{
					"games 0/0",
					"gameStatsheets s1",
					"teamStatsheets as1,hs1",
				})
				convey.So(writer.Count(), convey.ShouldEqual, 1)
				_, ok := writer.Get("games/0/h1")
				convey.So(ok, convey.ShouldBeTrue)
			})
		})
	})
}

func TestDayFailureIsolation(t *testing.T) {
	convey.Convey("Given day 7 whose team statsheets fetch dies on the wire", t, func() {
		fake := newFakeFeed()
		twoGameDay(fake, 7)
		fake.failTeams = func(ids []string) error {
			return fmt.Errorf("%w: connection reset", feed.ErrTransport)
		}
		writer := corpus.NewInMemory()
		orch := newOrchestrator(t, fake, writer, pipeline.WithSeasonDays(8))

		convey.Convey("When the season runs", func() {
			err := orch.Run(context.Background(), 0)

			convey.Convey("Then the run reports the transport failure", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, feed.ErrTransport), convey.ShouldBeTrue)
				convey.So(orch.Progress().FailedDays, convey.ShouldEqual, 1)
			})

			convey.Convey("Then day 7's games are still written", func() {
				_, ok := writer.Get("games/7/h1")
				convey.So(ok, convey.ShouldBeTrue)
				_, ok = writer.Get("games/7/h2")
				convey.So(ok, convey.ShouldBeTrue)
			})

			convey.Convey("Then no player record is written anywhere", func() {
				for _, key := range writer.Keys() {
					convey.So(strings.HasPrefix(key, "players/"), convey.ShouldBeFalse)
				}
			})
		})
	})
}

func TestDayWriteFailure(t *testing.T) {
	convey.Convey("Given a writer that rejects player records", t, func() {
		fake := newFakeFeed()
		twoGameDay(fake, 0)
		writer := corpus.NewInMemory()
		writer.FailOn = func(category string, segments []string) error {
			if category == corpus.CategoryPlayers {
				return fmt.Errorf("%w: disk full", corpus.ErrFilesystem)
			}

			return nil
		}
		orch := newOrchestrator(t, fake, writer, pipeline.WithSeasonDays(1))

		convey.Convey("When the season runs", func() {
			err := orch.Run(context.Background(), 0)

			convey.Convey("Then the run fails with the filesystem error and the games survive", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, corpus.ErrFilesystem), convey.ShouldBeTrue)
				_, ok := writer.Get("games/0/h1")
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(orch.Progress().PlayersWritten, convey.ShouldEqual, 0)
			})
		})
	})
}

func TestSeasonIdempotence(t *testing.T) {
	convey.Convey("Given the same upstream data fetched twice", t, func() {
		run := func() *corpus.InMemoryWriter {
			fake := newFakeFeed()
			twoGameDay(fake, 0)
			fake.gamesByDay[0][0].Extra = model.Extra{
				{Key: "weather", Value: []byte(`11`)},
				{Key: "shame", Value: []byte(`true`)},
			}
			writer := corpus.NewInMemory()
			orch := newOrchestrator(t, fake, writer,
				pipeline.WithSeasonDays(1),
				pipeline.WithTeamBatchSize(2))
			convey.So(orch.Run(context.Background(), 0), convey.ShouldBeNil)

			return writer
		}

		first := run()
		second := run()

		convey.Convey("Then both runs produce byte-identical records", func() {
			convey.So(second.Count(), convey.ShouldEqual, first.Count())
			for _, key := range first.Keys() {
				want, _ := first.Get(key)
				got, ok := second.Get(key)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(string(got), convey.ShouldEqual, string(want))
			}
		})

		convey.Convey("Then the extras ride along behind the typed fields", func() {
			data, ok := first.Get("games/0/h1")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(string(data), convey.ShouldEqual,
				`{"id":"g1","statsheet":"s1","awayTeam":"a1","homeTeam":"h1","weather":11,"shame":true}`)
		})
	})
}
