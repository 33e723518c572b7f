// Package limits provides the shared capacity policy and index validation
// used by the name buffer and the User entity.
package limits

import (
	"errors"
	"fmt"
)

const (
	// GrowthFactor is the multiplier applied to the current capacity when a
	// full buffer must grow.
	GrowthFactor = 2

	// GrowthIncrement is added after multiplying so that an empty buffer
	// grows to a single slot (0 -> 1 -> 3 -> 7 -> 15 ...)
	GrowthIncrement = 1
)

var (
	// ErrOutOfRange indicates an index outside [0, length)
	ErrOutOfRange = errors.New("index out of range")

	// ErrNegativeCapacity indicates a negative preallocation request
	ErrNegativeCapacity = errors.New("negative capacity")
)

// GrowCapacity returns the capacity a full buffer of the given capacity
// grows to on the next append.
func GrowCapacity(capacity int) int {
	return GrowthFactor*capacity + GrowthIncrement
}

// ValidateIndex checks index against a live element count.
// Returns an error with context including the index and the length.
func ValidateIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, length)
	}
	return nil
}

// ValidateCapacity rejects negative preallocation sizes.
func ValidateCapacity(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	return nil
}
