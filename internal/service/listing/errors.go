package listing

import (
	"errors"
)

var (
	// ErrStoreUnavailable marks a venue-store failure. The transport
	// answers with an empty page; the log line keeps the cause so the
	// condition stays distinguishable from a genuine zero-result match.
	ErrStoreUnavailable = errors.New("venue store unavailable")
)
