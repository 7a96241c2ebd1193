package feedsim

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/boxscore/internal/domain/model"
)

// Team is one simulated franchise and its roster of player ids.
type Team struct {
	ID      string
	Name    string
	Players []string
}

// GameSheet is a served gameStatsheets row.
type GameSheet struct {
	ID            string `json:"id"`
	AwayTeamStats string `json:"awayTeamStats"`
	HomeTeamStats string `json:"homeTeamStats"`
}

// TeamSheet is a served teamStatsheets row.
type TeamSheet struct {
	ID          string   `json:"id"`
	PlayerStats []string `json:"playerStats"`
}

// World is a fully generated season. Every id is derived from the seed,
// so two processes generating with the same Config hold the same World.
type World struct {
	Teams []Team

	GamesByDay  map[int][]model.GameUpdate
	SheetsByID  map[string]GameSheet
	TeamsByID   map[string]TeamSheet
	PlayersByID map[string]model.PlayerStatsheet
}

// Franchise name parts, combined deterministically per team index.
var (
	simCities = []string{
		"Charleston", "Baltimore", "Hades", "Yellowstone", "Kansas City",
		"Chicago", "Boston", "Hawai'i", "Breckenridge", "Philly",
	}
	simNicknames = []string{
		"Shoe Thieves", "Crabs", "Tigers", "Magic", "Breath Mints",
		"Firefighters", "Flowers", "Fridays", "Jazz Hands", "Pies",
	}
)

// Generate builds the full season for cfg. Generation order is fixed,
// so the seeded random stream lands on the same extras every run.
func Generate(cfg Config) *World {
	cfg = cfg.normalized()

	ns := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("feedsim/%d", cfg.Seed)))
	rng := rand.New(rand.NewSource(cfg.Seed))

	w := &World{
		Teams:       make([]Team, 0, cfg.Teams),
		GamesByDay:  make(map[int][]model.GameUpdate, cfg.Days),
		SheetsByID:  make(map[string]GameSheet),
		TeamsByID:   make(map[string]TeamSheet),
		PlayersByID: make(map[string]model.PlayerStatsheet),
	}

	for i := 0; i < cfg.Teams; i++ {
		team := Team{
			ID:      derive(ns, "team/%d", i),
			Name:    simCities[i%len(simCities)] + " " + simNicknames[(i*7+3)%len(simNicknames)],
			Players: make([]string, 0, playersPerTeam),
		}
		for p := 0; p < playersPerTeam; p++ {
			team.Players = append(team.Players, derive(ns, "team/%d/player/%d", i, p))
		}
		w.Teams = append(w.Teams, team)
	}

	for day := 0; day < cfg.Days; day++ {
		w.generateDay(ns, rng, day, cfg.Teams)
	}

	return w
}

// generateDay schedules one game per pair of teams. The pairing rotates
// with the day so matchups vary while every team plays exactly once,
// which keeps game and player corpus paths collision free within a day.
func (w *World) generateDay(ns uuid.UUID, rng *rand.Rand, day, teams int) {
	games := make([]model.GameUpdate, 0, teams/2)

	for g := 0; g < teams/2; g++ {
		away := w.Teams[(2*g+day)%teams]
		home := w.Teams[(2*g+1+day)%teams]

		sheetID := derive(ns, "day/%d/game/%d/sheet", day, g)
		game := model.GameUpdate{
			ID:        derive(ns, "day/%d/game/%d", day, g),
			Statsheet: sheetID,
			AwayTeam:  away.ID,
			HomeTeam:  home.ID,
			Extra: model.Extra{
				{Key: "awayTeamName", Value: rawString(away.Name)},
				{Key: "homeTeamName", Value: rawString(home.Name)},
				{Key: "weather", Value: rawInt(rng.Intn(weatherKinds))},
				{Key: "shame", Value: rawBool(rng.Intn(10) == 0)},
			},
		}
		games = append(games, game)

		w.SheetsByID[sheetID] = GameSheet{
			ID:            sheetID,
			AwayTeamStats: w.generateTeamDay(ns, rng, day, away),
			HomeTeamStats: w.generateTeamDay(ns, rng, day, home),
		}
	}

	w.GamesByDay[day] = games
}

// generateTeamDay builds one team's statsheet for a day along with the
// player statsheets it references, and returns the team sheet id.
func (w *World) generateTeamDay(ns uuid.UUID, rng *rand.Rand, day int, team Team) string {
	sheetID := derive(ns, "day/%d/teamsheet/%s", day, team.ID)

	sheet := TeamSheet{
		ID:          sheetID,
		PlayerStats: make([]string, 0, len(team.Players)),
	}
	for slot, playerID := range team.Players {
		psID := derive(ns, "day/%d/playersheet/%s/%d", day, team.ID, slot)
		sheet.PlayerStats = append(sheet.PlayerStats, psID)

		w.PlayersByID[psID] = model.PlayerStatsheet{
			ID:       psID,
			PlayerID: playerID,
			TeamID:   team.ID,
			Extra: model.Extra{
				{Key: "atBats", Value: rawInt(rng.Intn(6))},
				{Key: "hits", Value: rawInt(rng.Intn(4))},
				{Key: "battingAverage", Value: rawFloat(float64(150+rng.Intn(250)) / 1000)},
			},
		}
	}
	w.TeamsByID[sheetID] = sheet

	return sheetID
}

// Games returns the day's schedule, never nil so it serializes as an
// empty array rather than null.
func (w *World) Games(day int) []model.GameUpdate {
	games := w.GamesByDay[day]
	if games == nil {
		return []model.GameUpdate{}
	}
	return games
}

// derive produces a stable id for a generation coordinate.
func derive(ns uuid.UUID, format string, args ...any) string {
	return uuid.NewSHA1(ns, fmt.Appendf(nil, format, args...)).String()
}

func rawString(s string) json.RawMessage {
	return json.RawMessage(strconv.Quote(s))
}

func rawInt(n int) json.RawMessage {
	return json.RawMessage(strconv.Itoa(n))
}

func rawFloat(f float64) json.RawMessage {
	return json.RawMessage(strconv.FormatFloat(f, 'g', -1, 64))
}

func rawBool(b bool) json.RawMessage {
	return json.RawMessage(strconv.FormatBool(b))
}
