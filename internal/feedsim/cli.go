package feedsim

import "os"

// ShowHelp prints usage information for the feed simulator.
func ShowHelp() {
	os.Stdout.WriteString(`Boxscore Feed Simulator
=======================

Serves a deterministic fake season over the four feed endpoints, and
verifies a written corpus against the same season. The same -teams,
-days and -seed values always produce the same season, so a serve in
one process and a verify in another agree on every byte.

Usage:
  feedsim serve [options]
  feedsim verify [options]

Serve options:
  -addr string
        Listen address (default ":8008")
  -teams int
        Number of teams, rounded down to even (default 20)
  -days int
        Days in the season (default 99)
  -seed int
        Season seed (default 1)

Verify options:
  -dir string
        Corpus root to check (default "out")
  -teams int
        Must match the value the serve used (default 20)
  -days int
        Must match the value the serve used (default 99)
  -seed int
        Must match the value the serve used (default 1)
  -workers int
        Concurrent file checks (default 8)

Examples:
  # Serve a season and retrieve it
  feedsim serve -addr :8008
  BOXSCORE_BASE_URL=http://localhost:8008/database boxscore 1

  # Check the retrieved corpus afterwards
  feedsim verify -dir out
`)
}
