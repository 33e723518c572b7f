// Package limits provides the capacity growth policy and bounds validation
// shared by the namebuf and friend packages. Keeping both in one place means
// the buffer and the entity wrapping it report the same errors.
//
// # Growth Policy
//
// A full buffer grows to GrowCapacity(capacity), which is 2*capacity+1.
// Starting from an empty buffer the capacity sequence is 1, 3, 7, 15, 31 ...
// This geometric growth gives amortized O(1) appends.
//
//	next := limits.GrowCapacity(buf.Cap())
//
// # Index Validation
//
// Every index based accessor validates against the live element count, not
// the capacity:
//
//	if err := limits.ValidateIndex(i, buf.Len()); err != nil {
//	    // errors.Is(err, limits.ErrOutOfRange)
//	}
//
// # Error Types
//
//   - ErrOutOfRange: Returned when an index is negative or >= length
//   - ErrNegativeCapacity: Returned when a negative preallocation is requested
package limits
