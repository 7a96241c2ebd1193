package pipeline

import "errors"

// Sentinel kinds for pipeline errors, matched by callers with errors.Is.
var (
	ErrBadSeason     = errors.New("invalid season argument")
	ErrNotConfigured = errors.New("orchestrator not configured")
)
