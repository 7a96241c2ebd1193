// Package batch derives identifier lists and fan-out partitions from
// fetched records. Derivations preserve response order and never
// deduplicate: the upstream service is trusted to return one record per
// requested id.
package batch

import (
	"slices"

	model "github.com/okian/boxscore/internal/domain/model"
)

// StatsheetIDs returns the game statsheet id of every game, in response order.
func StatsheetIDs(games []model.GameUpdate) []string {
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.Statsheet)
	}
	return ids
}

// TeamStatsIDs returns the team statsheet ids of every game statsheet,
// away before home, in response order. Each sheet contributes two ids.
func TeamStatsIDs(sheets []model.GameStatsheet) []string {
	ids := make([]string, 0, 2*len(sheets))
	for _, s := range sheets {
		ids = append(ids, s.AwayTeamStats, s.HomeTeamStats)
	}
	return ids
}

// PlayerIDs flattens the player statsheet ids of the given team
// statsheets, keeping list order within and across sheets.
func PlayerIDs(sheets []model.TeamStatsheet) []string {
	var ids []string
	for _, s := range sheets {
		ids = append(ids, s.PlayerStats...)
	}
	return ids
}

// Partition splits the team statsheets into consecutive chunks of at most
// size elements. The final chunk may be short; an empty input yields no
// chunks. Chunks share the input's backing array.
func Partition(sheets []model.TeamStatsheet, size int) [][]model.TeamStatsheet {
	if size < 1 {
		size = 1
	}
	var parts [][]model.TeamStatsheet
	for chunk := range slices.Chunk(sheets, size) {
		parts = append(parts, chunk)
	}
	return parts
}
