package feedsim

import "errors"

// Sentinel kinds for simulator errors.
var (
	// ErrVerification indicates the corpus on disk does not match the
	// generated season.
	ErrVerification = errors.New("corpus verification failed")
)
