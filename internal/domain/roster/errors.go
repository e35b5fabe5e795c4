package roster

import "errors"

var (
	// ErrCapacityExceeded is returned when an insertion or promotion would
	// push the starting lineup past the configured slot capacity. No state
	// is changed.
	ErrCapacityExceeded = errors.New("starting lineup is full")

	// ErrInvalidCapacity is returned for a slot capacity outside 1..50.
	ErrInvalidCapacity = errors.New("starter slot capacity out of range")

	// ErrTooManyStarters blocks a save when the lineup holds more starters
	// than the current capacity allows. Lowering the capacity never evicts
	// players; it surfaces here on the next save instead.
	ErrTooManyStarters = errors.New("too many starters")

	// ErrIndexOutOfRange is returned by Reorder for invalid positions.
	ErrIndexOutOfRange = errors.New("reorder index out of range")

	// ErrAlreadyAssigned guards against a player appearing in both the
	// starters and the substitutes bench.
	ErrAlreadyAssigned = errors.New("player already assigned to this roster")

	// ErrNotAssigned is returned when removing or moving a player that is
	// not on the list named by the operation.
	ErrNotAssigned = errors.New("player is not assigned to this list")

	// ErrMalformedRecord marks a persisted roster record whose structure is
	// damaged. Stale player references are not malformed; they are dropped
	// silently during restore.
	ErrMalformedRecord = errors.New("malformed roster record")
)
