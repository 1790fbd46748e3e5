package adapter

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is the single failure condition callers observe: network
// errors, non-2xx responses and malformed bodies all wrap it. Views present
// it as generic text appropriate to their flow.
var ErrRequestFailed = errors.New("request failed")

// Refinements of [ErrRequestFailed] for the statuses callers branch on.
// Both still match ErrRequestFailed via [errors.Is].
var (
	ErrUnauthorized = fmt.Errorf("%w: unauthorized", ErrRequestFailed)
	ErrNotFound     = fmt.Errorf("%w: not found", ErrRequestFailed)
)
