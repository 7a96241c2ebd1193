// Package feedsim generates a deterministic fake season, serves it
// over the same four endpoints the real feed exposes, and verifies a
// written corpus against the generated expectation. The same seed
// always produces the same season, so a serve in one process and a
// verify in another agree.
package feedsim

// Default simulation parameters.
const (
	DefaultAddr    = ":8008"
	DefaultDir     = "out"
	DefaultTeams   = 20
	DefaultDays    = 99
	DefaultSeed    = 1
	DefaultWorkers = 8

	playersPerTeam = 9
	weatherKinds   = 20
)

// Config controls both the simulated feed and corpus verification.
type Config struct {
	Addr    string // serve: listen address
	Dir     string // verify: corpus root
	Teams   int
	Days    int
	Seed    int64
	Workers int
}

// normalized returns a copy with unusable values replaced by defaults.
// The team count is rounded down to an even number so every team has
// an opponent.
func (c Config) normalized() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}

	if c.Dir == "" {
		c.Dir = DefaultDir
	}

	if c.Teams < 2 {
		c.Teams = DefaultTeams
	}
	c.Teams -= c.Teams % 2

	if c.Days < 1 {
		c.Days = DefaultDays
	}

	if c.Workers < 1 {
		c.Workers = DefaultWorkers
	}

	return c
}
