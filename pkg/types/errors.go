package types

import "errors"

// Chain construction and structure errors.
var (
	ErrEmptyChain    = errors.New("chain needs at least one lamp")
	ErrBrokenLink    = errors.New("chain links are not symmetric")
	ErrLampNotFound  = errors.New("lamp not found")
	ErrDuplicateLamp = errors.New("duplicate lamp name")
)

// Config validation errors.
var (
	ErrDelayInvalid    = errors.New("delay is not a duration")
	ErrDelayNegative   = errors.New("delay must not be negative")
	ErrLogLevelUnknown = errors.New("unknown log level")
)
