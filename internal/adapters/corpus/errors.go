package corpus

import "errors"

// Sentinel kinds for corpus errors, matched by callers with errors.Is.
var (
	ErrFilesystem = errors.New("filesystem failure")
)
