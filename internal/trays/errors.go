package trays

import "github.com/pkg/errors"

// Error taxonomy shared by the slot map and the sequence builder.
// Callers match with errors.Is; returned errors wrap one of these with context.
var (
	// ErrInput indicates a non-positive or empty sample number range.
	ErrInput = errors.New("trays: invalid sample range")
	// ErrCapacity indicates the slot universe cannot hold the requested samples
	// (and default reserved slots) from the starting slot.
	ErrCapacity = errors.New("trays: not enough slots")
	// ErrOverlap indicates a reserved slot lies inside the sample placement range.
	ErrOverlap = errors.New("trays: reserved slot overlaps sample range")
	// ErrConfiguration indicates an unresolvable slot, a malformed layout, or an
	// invalid interleaving parameter.
	ErrConfiguration = errors.New("trays: invalid configuration")
)
