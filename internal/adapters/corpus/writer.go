// Package corpus persists fetched records as JSON documents laid out
// for later bulk analysis. Games land under games/<day>/<homeTeam>.json
// and player season stats under players/<player>/<day>.json, and every
// write replaces whatever an earlier run left behind.
package corpus

import "context"

// Record categories, used both as path roots and as metric labels.
const (
	CategoryGames   = "games"
	CategoryPlayers = "players"
)

// Writer stores one record under a category and a path of segments.
// The final segment names the document; earlier segments name the
// directories above it.
type Writer interface {
	Write(ctx context.Context, category string, segments []string, record any) error
}
