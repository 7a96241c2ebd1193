package feedsim

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/okian/boxscore/internal/adapters/corpus"
)

// Report summarizes a corpus verification run. Games and Players count
// files whose bytes matched the generated expectation.
type Report struct {
	Games      int64
	Players    int64
	Missing    int64
	Mismatched int64
}

// Clean reports whether every expected file was present and matched.
func (r *Report) Clean() bool {
	return r.Missing == 0 && r.Mismatched == 0
}

// Verify regenerates the season for cfg and checks every file the
// pipeline should have written under cfg.Dir against it, byte for
// byte. Checks run on a bounded worker group; missing and mismatched
// files are counted and reported together, while a filesystem error
// other than absence aborts the walk.
func Verify(ctx context.Context, cfg Config) (*Report, error) {
	cfg = cfg.normalized()
	world := Generate(cfg)

	log.Printf("🔍 verifying corpus at %s (teams=%d days=%d seed=%d workers=%d)",
		cfg.Dir, cfg.Teams, cfg.Days, cfg.Seed, cfg.Workers)

	var games, players, missing, mismatched atomic.Int64

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Workers)

	check := func(path string, record any, matched *atomic.Int64) {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			want, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("marshal expectation for %s: %w", path, err)
			}

			got, err := os.ReadFile(path)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				missing.Add(1)
				log.Printf("❌ missing: %s", path)
				return nil
			case err != nil:
				return fmt.Errorf("read %s: %w", path, err)
			}

			if !bytes.Equal(got, want) {
				mismatched.Add(1)
				log.Printf("❌ mismatch: %s", path)
				return nil
			}

			matched.Add(1)
			return nil
		})
	}

	// Walk the same derivation chain the pipeline follows: games by
	// day, then each game's statsheet, team sheets and player sheets.
	for day := 0; day < cfg.Days; day++ {
		dayDir := strconv.Itoa(day)
		for _, game := range world.GamesByDay[day] {
			check(filepath.Join(cfg.Dir, corpus.CategoryGames, dayDir, game.HomeTeam+".json"), game, &games)

			sheet := world.SheetsByID[game.Statsheet]
			for _, teamSheetID := range []string{sheet.AwayTeamStats, sheet.HomeTeamStats} {
				for _, playerSheetID := range world.TeamsByID[teamSheetID].PlayerStats {
					player := world.PlayersByID[playerSheetID]
					check(filepath.Join(cfg.Dir, corpus.CategoryPlayers, player.PlayerID, dayDir+".json"), player, &players)
				}
			}
		}
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Games:      games.Load(),
		Players:    players.Load(),
		Missing:    missing.Load(),
		Mismatched: mismatched.Load(),
	}

	if !report.Clean() {
		log.Printf("💥 verification failed: %d missing, %d mismatched (matched %d games, %d players)",
			report.Missing, report.Mismatched, report.Games, report.Players)
		return report, fmt.Errorf("%w: %d missing, %d mismatched",
			ErrVerification, report.Missing, report.Mismatched)
	}

	log.Printf("✅ corpus matches the generated season: %d games, %d players",
		report.Games, report.Players)
	return report, nil
}
