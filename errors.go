package lrucache

import (
	"errors"
)

var (
	// ErrInvalidLimit is returned when a cache capacity is not positive.
	// Zero is not a valid capacity: a cache must be able to hold at least
	// one entry.
	ErrInvalidLimit = errors.New("limit must be positive")
)
