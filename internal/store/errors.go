package store

import "errors"

// ErrSessionNotFound is returned by [SessionFile.Load] when no session has
// been persisted yet.
var ErrSessionNotFound = errors.New("local session not found")
