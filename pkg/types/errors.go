package types

import "errors"

// Session errors.
var (
	ErrUnknownStep    = errors.New("unknown session step")
	ErrMissingAcronym = errors.New("acronym must not be empty")
	ErrSessionFormat  = errors.New("unsupported session format")
)

// Query errors.
var (
	ErrInvalidTimeRange = errors.New("range start is after range end")
)
