package edit

import (
	"errors"
	"fmt"
)

var errNilStore = errors.New("edit session requires a store")

// ErrBadChangeLimit is returned for change-limit values below -1. Nothing is
// mutated when it is returned.
var ErrBadChangeLimit = errors.New("block change limit must be >= -1")

// MaxChangedBlocksError aborts a batch the instant the number of distinct
// changed positions would exceed the session limit. It is fatal to the batch:
// already-applied writes stay applied, and the caller must stop issuing
// writes (undo to roll the batch back).
type MaxChangedBlocksError struct {
	Limit int
}

func (e *MaxChangedBlocksError) Error() string {
	return fmt.Sprintf("reached the block change limit of %d", e.Limit)
}
