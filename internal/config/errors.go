package config

import (
	"errors"
)

// Sentinel kinds for config errors, matched by callers with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
