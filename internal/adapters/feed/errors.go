package feed

import (
	"errors"
)

// Sentinel kinds for feed errors.
var (
	ErrTransport = errors.New("transport failure")
	ErrDecode    = errors.New("decode failure")
)
